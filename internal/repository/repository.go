package repository

import (
	"errors"

	"legalassist/internal/model"
)

// ErrDuplicateUsername is returned by UserStore.Create when the username is
// taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Lookups return (nil, nil) when the record does not exist.

type MessageStore interface {
	Create(message *model.ChatMessage) error
	ListBySessionID(sessionID string) ([]model.ChatMessage, error)
}

type DocumentStore interface {
	Create(doc *model.LegalDocument) error
	GetByID(id uint) (*model.LegalDocument, error)
	ListBySessionID(sessionID string) ([]model.LegalDocument, error)
}

// KnowledgeStore searches with case-insensitive substring matching over
// keywords, question and answer. An empty category disables the filter.
type KnowledgeStore interface {
	Create(record *model.LegalKnowledge) error
	CreateBatch(records []model.LegalKnowledge) error
	List() ([]model.LegalKnowledge, error)
	Count() (int64, error)
	Search(keywords []string, category string) ([]model.LegalKnowledge, error)
}

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

var (
	_ MessageStore   = (*MessageRepository)(nil)
	_ DocumentStore  = (*DocumentRepository)(nil)
	_ KnowledgeStore = (*KnowledgeRepository)(nil)
	_ UserStore      = (*UserRepository)(nil)
)
