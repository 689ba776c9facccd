package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Doe
Senior Software Engineer
john.doe@example.com | 555-123-4567

Skills: Java, Spring, SQL, Docker
Built REST API integrations and microservices on AWS.`

func TestHeuristicExtractor_Extract(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	f := e.Extract(sampleResume)

	assert.Equal(t, "John Doe", f.FullName)
	assert.Equal(t, "john.doe@example.com", f.Email)
	assert.Equal(t, "555-123-4567", f.Phone)
	assert.Subset(t, f.Skills, []string{"java", "spring", "sql", "docker", "rest api", "aws", "microservices"})
}

func TestHeuristicExtractor_NameIsFirstNonBlankLine(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	f := e.Extract("\n\n   \n  Jane Smith  \nDeveloper")
	assert.Equal(t, "Jane Smith", f.FullName)
}

func TestHeuristicExtractor_EmailStripping(t *testing.T) {
	e := NewHeuristicExtractor(nil)

	f := e.Extract("Jane\nContact: <jane.smith@example.com>,")
	assert.Equal(t, "jane.smith@example.com", f.Email)

	// A line with '@' but no '.' is not an address.
	f = e.Extract("Jane\nhandle @janesmith on social")
	assert.Empty(t, f.Email)
}

func TestHeuristicExtractor_PhoneFormats(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	for _, phone := range []string{"555-123-4567", "555.123.4567", "555 123 4567", "5551234567"} {
		f := e.Extract("Jane\nPhone: " + phone)
		assert.NotEmpty(t, f.Phone, phone)
	}
}

func TestHeuristicExtractor_CustomVocabulary(t *testing.T) {
	e := NewHeuristicExtractor([]string{"Rust", "Go"})
	f := e.Extract("Systems programmer fluent in rust and go")
	assert.Equal(t, []string{"Rust", "Go"}, f.Skills)
}

func TestHeuristicExtractor_MalformedInputNeverPanics(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	inputs := []string{
		"",
		"   \n\t\n  ",
		strings.Repeat("@.", 5000),
		"\x00\x01\x02 binary garbage \xff",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { e.Extract(in) })
	}
}

func TestHeuristicExtractor_UnfoundFieldsStayUnset(t *testing.T) {
	e := NewHeuristicExtractor(nil)
	f := e.Extract("just some text without contacts")

	assert.Empty(t, f.Email)
	assert.Empty(t, f.Phone)
	assert.Equal(t, "just some text without contacts", f.FullName)
}
