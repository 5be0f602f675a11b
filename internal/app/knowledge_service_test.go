package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/repository/memory"
)

func newKnowledgeService(t *testing.T) *KnowledgeService {
	t.Helper()
	svc := NewKnowledgeService(memory.NewStore().Knowledge())
	n, err := svc.EnsureSeed()
	require.NoError(t, err)
	require.Equal(t, 17, n)
	return svc
}

func TestEnsureSeedOnlyOnce(t *testing.T) {
	svc := newKnowledgeService(t)

	n, err := svc.EnsureSeed()
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 17)
}

func TestSearch(t *testing.T) {
	svc := newKnowledgeService(t)

	got, err := svc.Search("fir", "")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "How to file an FIR?", got[0].Question)

	filtered, err := svc.Search("custody", "criminal")
	require.NoError(t, err)
	for _, r := range filtered {
		assert.Equal(t, "criminal", r.Category)
	}
	assert.NotEmpty(t, filtered)

	short, err := svc.Search("a of", "")
	require.NoError(t, err)
	assert.Empty(t, short)
}

func TestSearchValidation(t *testing.T) {
	svc := newKnowledgeService(t)

	_, err := svc.Search(" ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	found, err := svc.Search("fir police", "taxation")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)

	found, err = svc.Search("fir police", "  CRIMINAL ")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, r := range found {
		assert.Equal(t, "criminal", r.Category)
	}
}

func TestCreateKnowledge(t *testing.T) {
	svc := newKnowledgeService(t)

	record, err := svc.Create(CreateKnowledgeInput{
		Category: "Civil",
		Keywords: []string{" cheque bounce ", ""},
		Question: "What to do when a cheque bounces?",
		Answer:   "Send a legal notice within 30 days.",
	})
	require.NoError(t, err)
	assert.Equal(t, "civil", record.Category)
	assert.Equal(t, []string{"cheque bounce"}, record.Keywords)
	assert.Equal(t, 1, record.Priority)
	assert.NotZero(t, record.ID)

	found, err := svc.Search("cheque", "civil")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, record.ID, found[0].ID)
}

func TestCreateKnowledgeValidation(t *testing.T) {
	svc := newKnowledgeService(t)

	_, err := svc.Create(CreateKnowledgeInput{Category: "space", Question: "q", Answer: "a", Keywords: []string{"k"}})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Create(CreateKnowledgeInput{Category: "civil", Question: "q", Answer: " ", Keywords: []string{"k"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(CreateKnowledgeInput{Category: "civil", Question: "q", Answer: "a"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
