package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "go postgres rest api", Normalize("  Go, Postgres & REST/API!  "))
	assert.Equal(t, "", Normalize("  \t\n "))
	assert.Equal(t, "c 4 2", Normalize("C#4.2"))
}

func TestTokenSet_DropsShortTokens(t *testing.T) {
	set := TokenSet("Go and the Postgres API sql java", 3)
	assert.Contains(t, set, "postgres")
	assert.Contains(t, set, "java")
	assert.NotContains(t, set, "go")
	assert.NotContains(t, set, "and")
	assert.NotContains(t, set, "the")
	assert.NotContains(t, set, "api")
	assert.NotContains(t, set, "sql")
}

func TestJaccard(t *testing.T) {
	a := TokenSet("docker kubernetes postgres", 3)
	b := TokenSet("docker kubernetes redis", 3)
	// |{docker,kubernetes}| / |{docker,kubernetes,postgres,redis}|
	assert.InDelta(t, 0.5, Jaccard(a, b), 1e-9)

	assert.Equal(t, 0.0, Jaccard(nil, b))
	assert.Equal(t, 0.0, Jaccard(a, map[string]struct{}{}))
	assert.InDelta(t, 1.0, Jaccard(a, a), 1e-9)
}
