package repository

import (
	"fmt"

	"gorm.io/gorm"

	"legalassist/internal/knowledge"
	"legalassist/internal/model"
)

type KnowledgeRepository struct {
	db *gorm.DB
}

func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

func (r *KnowledgeRepository) Create(record *model.LegalKnowledge) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create knowledge failed: %w", err)
	}
	return nil
}

func (r *KnowledgeRepository) CreateBatch(records []model.LegalKnowledge) error {
	if len(records) == 0 {
		return nil
	}
	if err := r.db.Create(&records).Error; err != nil {
		return fmt.Errorf("create knowledge batch failed: %w", err)
	}
	return nil
}

func (r *KnowledgeRepository) List() ([]model.LegalKnowledge, error) {
	var list []model.LegalKnowledge
	if err := r.db.Order("priority DESC, id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list knowledge failed: %w", err)
	}
	return list, nil
}

func (r *KnowledgeRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&model.LegalKnowledge{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count knowledge failed: %w", err)
	}
	return n, nil
}

// Search narrows by category in SQL and matches keywords in memory, since the
// keyword list is a serialized column.
func (r *KnowledgeRepository) Search(keywords []string, category string) ([]model.LegalKnowledge, error) {
	q := r.db.Order("id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var candidates []model.LegalKnowledge
	if err := q.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("search knowledge failed: %w", err)
	}
	return knowledge.Match(candidates, keywords, category), nil
}
