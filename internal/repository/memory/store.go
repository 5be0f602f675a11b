// Package memory keeps every record in process memory. It is the default
// storage driver and the fake used by service tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"legalassist/internal/knowledge"
	"legalassist/internal/model"
	"legalassist/internal/repository"
)

// Store is safe for concurrent use. IDs are assigned per table starting at 1.
type Store struct {
	mu sync.RWMutex

	messages  []model.ChatMessage
	documents []model.LegalDocument
	knowledge []model.LegalKnowledge
	users     []model.User

	nextMessageID   uint
	nextDocumentID  uint
	nextKnowledgeID uint
	nextUserID      uint

	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

func (s *Store) Messages() *MessageStore { return &MessageStore{s: s} }
func (s *Store) Documents() *DocumentStore { return &DocumentStore{s: s} }
func (s *Store) Knowledge() *KnowledgeStore { return &KnowledgeStore{s: s} }
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

type MessageStore struct{ s *Store }

func (m *MessageStore) Create(message *model.ChatMessage) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	m.s.nextMessageID++
	message.ID = m.s.nextMessageID
	if message.Timestamp.IsZero() {
		message.Timestamp = m.s.now()
	}
	m.s.messages = append(m.s.messages, *message)
	return nil
}

func (m *MessageStore) ListBySessionID(sessionID string) ([]model.ChatMessage, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]model.ChatMessage, 0)
	for _, msg := range m.s.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

type DocumentStore struct{ s *Store }

func (d *DocumentStore) Create(doc *model.LegalDocument) error {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()

	d.s.nextDocumentID++
	doc.ID = d.s.nextDocumentID
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = d.s.now()
	}
	d.s.documents = append(d.s.documents, *doc)
	return nil
}

func (d *DocumentStore) GetByID(id uint) (*model.LegalDocument, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	for _, doc := range d.s.documents {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}
	return nil, nil
}

// ListBySessionID returns the newest upload first.
func (d *DocumentStore) ListBySessionID(sessionID string) ([]model.LegalDocument, error) {
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	out := make([]model.LegalDocument, 0)
	for i := len(d.s.documents) - 1; i >= 0; i-- {
		if d.s.documents[i].SessionID == sessionID {
			out = append(out, d.s.documents[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

type KnowledgeStore struct{ s *Store }

func (k *KnowledgeStore) Create(record *model.LegalKnowledge) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()

	k.insertLocked(record)
	return nil
}

func (k *KnowledgeStore) CreateBatch(records []model.LegalKnowledge) error {
	k.s.mu.Lock()
	defer k.s.mu.Unlock()

	for i := range records {
		k.insertLocked(&records[i])
	}
	return nil
}

func (k *KnowledgeStore) insertLocked(record *model.LegalKnowledge) {
	k.s.nextKnowledgeID++
	record.ID = k.s.nextKnowledgeID
	if record.Priority == 0 {
		record.Priority = 1
	}
	k.s.knowledge = append(k.s.knowledge, knowledge.Clone(*record))
}

func (k *KnowledgeStore) List() ([]model.LegalKnowledge, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()

	out := make([]model.LegalKnowledge, 0, len(k.s.knowledge))
	for _, record := range k.s.knowledge {
		out = append(out, knowledge.Clone(record))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}

func (k *KnowledgeStore) Count() (int64, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()
	return int64(len(k.s.knowledge)), nil
}

func (k *KnowledgeStore) Search(keywords []string, category string) ([]model.LegalKnowledge, error) {
	k.s.mu.RLock()
	defer k.s.mu.RUnlock()
	return knowledge.Match(k.s.knowledge, keywords, category), nil
}

type UserStore struct{ s *Store }

func (u *UserStore) Create(user *model.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, existing := range u.s.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	u.s.nextUserID++
	user.ID = u.s.nextUserID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = u.s.now()
	}
	u.s.users = append(u.s.users, *user)
	return nil
}

func (u *UserStore) GetByUsername(username string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, user := range u.s.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *UserStore) GetByID(id uint) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, user := range u.s.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}
