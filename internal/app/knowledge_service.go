package app

import (
	"strings"

	"legalassist/internal/knowledge"
	"legalassist/internal/legal"
	"legalassist/internal/model"
	"legalassist/internal/repository"
)

type KnowledgeService struct {
	store repository.KnowledgeStore
}

type CreateKnowledgeInput struct {
	Category string
	Keywords []string
	Question string
	Answer   string
	Priority int
}

func NewKnowledgeService(store repository.KnowledgeStore) *KnowledgeService {
	return &KnowledgeService{store: store}
}

// EnsureSeed loads the built-in records into an empty store and reports how
// many were inserted.
func (s *KnowledgeService) EnsureSeed() (int, error) {
	n, err := s.store.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	records := knowledge.Seed()
	if err := s.store.CreateBatch(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *KnowledgeService) List() ([]model.LegalKnowledge, error) {
	return s.store.List()
}

// Search splits q on whitespace and keeps terms longer than two characters.
// The category is matched as given after trimming and lower-casing, so an
// unknown category yields no records rather than an error.
func (s *KnowledgeService) Search(q, category string) ([]model.LegalKnowledge, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrInvalidInput
	}

	filter := strings.ToLower(strings.TrimSpace(category))

	terms := legal.SplitSearchTerms(q)
	if len(terms) == 0 {
		return []model.LegalKnowledge{}, nil
	}
	return s.store.Search(terms, filter)
}

func (s *KnowledgeService) Create(input CreateKnowledgeInput) (*model.LegalKnowledge, error) {
	c, ok := legal.ParseCategory(input.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}
	question := strings.TrimSpace(input.Question)
	answer := strings.TrimSpace(input.Answer)
	if question == "" || answer == "" {
		return nil, ErrInvalidInput
	}

	keywords := make([]string, 0, len(input.Keywords))
	for _, kw := range input.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return nil, ErrInvalidInput
	}

	priority := input.Priority
	if priority <= 0 {
		priority = 1
	}

	record := &model.LegalKnowledge{
		Category: c.String(),
		Keywords: keywords,
		Question: question,
		Answer:   answer,
		Priority: priority,
	}
	if err := s.store.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}
