package legal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/knowledge"
	"legalassist/internal/model"
)

type seedSearcher struct{}

func (seedSearcher) Search(keywords []string, category string) ([]model.LegalKnowledge, error) {
	return knowledge.Match(knowledge.Seed(), keywords, category), nil
}

type failingSearcher struct{}

func (failingSearcher) Search([]string, string) ([]model.LegalKnowledge, error) {
	return nil, errors.New("store down")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		query string
		want  Category
	}{
		{"property dispute with police involvement", Property},
		{"my neighbour filed a complaint", Criminal},
		{"my wife wants a divorce", Family},
		{"breach of contract", Civil},
		{"defective product refund", Consumer},
		{"hello", General},
		{"", General},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory(" Family ")
	assert.True(t, ok)
	assert.Equal(t, Family, c)

	c, ok = ParseCategory("tax")
	assert.False(t, ok)
	assert.Equal(t, General, c)
}

func TestExtractKeywords(t *testing.T) {
	assert.Equal(t, []string{"quick", "brown", "fox", "jumps"}, ExtractKeywords("the quick brown fox jumps"))
	assert.Equal(t, []string{"file", "fir"}, ExtractKeywords("How to file an FIR?"))
	assert.Empty(t, ExtractKeywords("a an is"))

	many := ExtractKeywords(strings.Repeat("word ", 3) + "one two three four five six seven eight nine ten eleven")
	assert.Len(t, many, maxKeywords)
}

func TestSplitSearchTerms(t *testing.T) {
	assert.Equal(t, []string{"the", "fir", "police"}, SplitSearchTerms("  The FIR of police  "))
	assert.Empty(t, SplitSearchTerms("a of"))
}

func TestRespondTemplate(t *testing.T) {
	resp := NewResponder(seedSearcher{}).Respond("How to File an FIR?")

	assert.Equal(t, SourceTemplate, resp.Source)
	assert.Equal(t, Criminal, resp.Category)
	assert.True(t, strings.HasPrefix(resp.Text, "**How to File an FIR (First Information Report)**"))
	assert.Contains(t, resp.Suggestions, "How to file an FIR")
}

func TestRespondKnowledge(t *testing.T) {
	resp := NewResponder(seedSearcher{}).Respond("What are tenant rights?")

	require.Equal(t, SourceKnowledge, resp.Source)
	assert.Equal(t, Property, resp.Category)
	assert.True(t, strings.HasPrefix(resp.Text, "**What are tenant rights in India?**\n\n"))
	assert.True(t, strings.HasSuffix(resp.Text, knowledgeDisclaimer))
}

func TestRespondFallback(t *testing.T) {
	resp := NewResponder(seedSearcher{}).Respond("xyzzy")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, General, resp.Category)
	assert.Equal(t, FallbackResponse(General), resp.Text)
	assert.Len(t, resp.Suggestions, 4)
}

func TestRespondTreatsStoreErrorAsNoMatch(t *testing.T) {
	resp := NewResponder(failingSearcher{}).Respond("What are tenant rights?")

	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, FallbackResponse(Property), resp.Text)
}

func TestRespondWithoutStore(t *testing.T) {
	resp := NewResponder(nil).Respond("breach of contract")
	assert.Equal(t, SourceFallback, resp.Source)
	assert.Equal(t, Civil, resp.Category)
}

func TestRespondIsDeterministic(t *testing.T) {
	r := NewResponder(seedSearcher{})
	assert.Equal(t, r.Respond("bail application process"), r.Respond("bail application process"))
}

func TestSuggestionsReturnsCopy(t *testing.T) {
	s := Suggestions(Family)
	s[0] = "changed"
	assert.Equal(t, "Divorce procedure in India", Suggestions(Family)[0])
}

func TestFirstMatchUsesRuleOrder(t *testing.T) {
	rules := []Rule[int]{
		{Match: ContainsAny("a"), Result: 1},
		{Match: ContainsAny("a"), Result: 2},
	}
	assert.Equal(t, 1, FirstMatch(rules, "a", 0))
	assert.Equal(t, 0, FirstMatch(rules, "b", 0))
}
