package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/model"
)

func TestMatchFindsFIRRecord(t *testing.T) {
	got := Match(Seed(), []string{"fir"}, "")

	require.NotEmpty(t, got)
	found := false
	for i, r := range got {
		if r.Question == "How to file an FIR?" {
			found = true
			for _, later := range got[i+1:] {
				assert.LessOrEqual(t, later.Priority, r.Priority)
			}
		}
	}
	assert.True(t, found)
}

func TestMatchOrdering(t *testing.T) {
	records := []model.LegalKnowledge{
		{ID: 1, Category: "civil", Keywords: []string{"Contract"}, Question: "a", Priority: 1},
		{ID: 2, Category: "civil", Question: "contract b", Priority: 3},
		{ID: 3, Category: "civil", Answer: "a CONTRACT c", Priority: 1},
		{ID: 4, Category: "consumer", Keywords: []string{"contract"}, Priority: 5},
	}

	got := Match(records, []string{"contract"}, "civil")

	require.Len(t, got, 3)
	assert.Equal(t, []uint{2, 1, 3}, []uint{got[0].ID, got[1].ID, got[2].ID})
}

func TestMatchEmpty(t *testing.T) {
	assert.Empty(t, Match(Seed(), nil, ""))
	assert.Empty(t, Match(Seed(), []string{"   "}, ""))
	assert.Empty(t, Match(Seed(), []string{"zzzzzz"}, ""))
	assert.NotNil(t, Match(Seed(), []string{"zzzzzz"}, ""))
}

func TestSeedCoversEveryCategory(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Seed() {
		seen[r.Category] = true
		assert.NotEmpty(t, r.Keywords)
		assert.Positive(t, r.Priority)
	}
	assert.Len(t, Seed(), 17)
	for _, c := range []string{"property", "criminal", "family", "civil", "consumer"} {
		assert.True(t, seen[c], c)
	}
}

func TestMatchClonesKeywords(t *testing.T) {
	records := []model.LegalKnowledge{{ID: 1, Category: "civil", Keywords: []string{"contract"}, Priority: 1}}

	got := Match(records, []string{"contract"}, "")
	require.Len(t, got, 1)
	got[0].Keywords[0] = "changed"

	assert.Equal(t, "contract", records[0].Keywords[0])
}
