package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legalassist/internal/legal"
	"legalassist/internal/model"
	"legalassist/internal/repository"
)

type AsyncMessagePublisher interface {
	Publish(ctx context.Context, msg model.ChatMessage) error
}

type HistoryCache interface {
	GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, bool, error)
	SetHistory(ctx context.Context, sessionID string, messages []model.ChatMessage) error
	DeleteHistory(ctx context.Context, sessionID string) error
	MarkDirty(ctx context.Context, sessionID string) error
	IsDirty(ctx context.Context, sessionID string) (bool, error)
}

type ResponseEnhancer interface {
	EnhanceResponse(ctx context.Context, query, basic string) (string, error)
}

// ChatOptions holds the optional collaborators of ChatService. Leave a field
// nil to disable it.
type ChatOptions struct {
	Publisher    AsyncMessagePublisher
	HistoryCache HistoryCache
	Enhancer     ResponseEnhancer
}

type ChatService struct {
	messageStore repository.MessageStore
	responder    *legal.Responder
	publisher    AsyncMessagePublisher
	historyCache HistoryCache
	enhancer     ResponseEnhancer
	logger       *zap.Logger
	now          func() time.Time
}

type SendMessageResult struct {
	UserMessage model.ChatMessage `json:"userMessage"`
	BotMessage  model.ChatMessage `json:"botMessage"`
	Suggestions []string          `json:"suggestions"`
	Source      legal.Source      `json:"source"`
}

func NewChatService(
	messageStore repository.MessageStore,
	responder *legal.Responder,
	logger *zap.Logger,
	opts ChatOptions,
) *ChatService {
	return &ChatService{
		messageStore: messageStore,
		responder:    responder,
		publisher:    opts.Publisher,
		historyCache: opts.HistoryCache,
		enhancer:     opts.Enhancer,
		logger:       logger.Named("chat"),
		now:          time.Now,
	}
}

// ClassifyAndRespond answers a query without touching storage.
func (s *ChatService) ClassifyAndRespond(query string) legal.Response {
	return s.responder.Respond(query)
}

func (s *ChatService) Welcome() string {
	return legal.WelcomeMessage()
}

func (s *ChatService) NewSessionID() string {
	return uuid.NewString()
}

// SendMessage stores the user's message, answers it and stores the answer.
// When a publisher is configured both messages are queued and carry ID 0 until
// the worker persists them.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content string) (*SendMessageResult, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)

	userMessage := model.ChatMessage{
		SessionID: sessionID,
		Content:   content,
		IsBot:     false,
		Timestamp: s.now(),
	}
	if err := s.persist(ctx, &userMessage); err != nil {
		return nil, err
	}

	resp := s.responder.Respond(content)
	text := resp.Text
	if s.enhancer != nil {
		enhanced, err := s.enhancer.EnhanceResponse(ctx, content, text)
		if err != nil {
			s.logger.Warn("enhance response failed, using base response", zap.String("session_id", sessionID), zap.Error(err))
		} else {
			text = enhanced
		}
	}

	botMessage := model.ChatMessage{
		SessionID: sessionID,
		Content:   text,
		IsBot:     true,
		Category:  resp.Category.String(),
		Timestamp: s.now(),
	}
	if !botMessage.Timestamp.After(userMessage.Timestamp) {
		botMessage.Timestamp = userMessage.Timestamp.Add(time.Millisecond)
	}
	if err := s.persist(ctx, &botMessage); err != nil {
		return nil, err
	}

	return &SendMessageResult{
		UserMessage: userMessage,
		BotMessage:  botMessage,
		Suggestions: resp.Suggestions,
		Source:      resp.Source,
	}, nil
}

func (s *ChatService) persist(ctx context.Context, msg *model.ChatMessage) error {
	if s.publisher != nil {
		s.invalidate(ctx, msg.SessionID, true)
		err := s.publisher.Publish(ctx, *msg)
		if err == nil {
			return nil
		}
		s.logger.Warn("enqueue message failed, writing directly", zap.String("session_id", msg.SessionID), zap.Error(err))
	}

	if err := s.messageStore.Create(msg); err != nil {
		return err
	}
	s.invalidate(ctx, msg.SessionID, false)
	return nil
}

func (s *ChatService) invalidate(ctx context.Context, sessionID string, markDirty bool) {
	if s.historyCache == nil {
		return
	}
	if markDirty {
		if err := s.historyCache.MarkDirty(ctx, sessionID); err != nil {
			s.logger.Warn("mark history dirty failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	if err := s.historyCache.DeleteHistory(ctx, sessionID); err != nil {
		s.logger.Warn("delete cached history failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// GetHistory returns a session's messages oldest first.
func (s *ChatService) GetHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}

	if s.historyCache != nil {
		dirty, err := s.historyCache.IsDirty(ctx, sessionID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.historyCache.GetHistory(ctx, sessionID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	messages, err := s.messageStore.ListBySessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if s.historyCache != nil {
		if dirty, dirtyErr := s.historyCache.IsDirty(ctx, sessionID); dirtyErr == nil && !dirty {
			if err := s.historyCache.SetHistory(ctx, sessionID, messages); err != nil {
				s.logger.Warn("cache history failed", zap.String("session_id", sessionID), zap.Error(err))
			}
		}
	}
	return messages, nil
}
