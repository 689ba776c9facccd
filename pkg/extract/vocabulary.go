package extract

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultSkillVocabulary is the built-in list of recognized skill tokens.
// Deployments can replace it with a file, see LoadVocabulary.
var DefaultSkillVocabulary = []string{
	"java", "python", "javascript", "react", "spring", "hibernate",
	"sql", "mongodb", "docker", "kubernetes", "aws", "git", "maven",
	"microservices", "rest api", "machine learning", "data analysis",
}

// LoadVocabulary reads a newline-separated skill list. Blank lines and lines
// starting with '#' are skipped.
func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary %s: %w", path, err)
	}
	defer f.Close()

	var vocab []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vocab = append(vocab, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return vocab, nil
}
