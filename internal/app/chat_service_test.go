package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legalassist/internal/knowledge"
	"legalassist/internal/legal"
	"legalassist/internal/model"
	"legalassist/internal/repository/memory"
)

type fakePublisher struct {
	published []model.ChatMessage
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, msg model.ChatMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

type fakeCache struct {
	history map[string][]model.ChatMessage
	dirty   map[string]bool
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{history: map[string][]model.ChatMessage{}, dirty: map[string]bool{}}
}

func (c *fakeCache) GetHistory(_ context.Context, id string) ([]model.ChatMessage, bool, error) {
	h, ok := c.history[id]
	return h, ok, nil
}

func (c *fakeCache) SetHistory(_ context.Context, id string, m []model.ChatMessage) error {
	c.history[id] = m
	return nil
}

func (c *fakeCache) DeleteHistory(_ context.Context, id string) error {
	c.deletes++
	delete(c.history, id)
	return nil
}

func (c *fakeCache) MarkDirty(_ context.Context, id string) error {
	c.dirty[id] = true
	return nil
}

func (c *fakeCache) IsDirty(_ context.Context, id string) (bool, error) {
	return c.dirty[id], nil
}

type fakeEnhancer struct {
	out string
	err error
}

func (e fakeEnhancer) EnhanceResponse(context.Context, string, string) (string, error) {
	return e.out, e.err
}

func newChatService(t *testing.T, opts ChatOptions) (*ChatService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Knowledge().CreateBatch(knowledge.Seed()))
	responder := legal.NewResponder(store.Knowledge())
	return NewChatService(store.Messages(), responder, zap.NewNop(), opts), store
}

func TestSendMessageStoresBothTurns(t *testing.T) {
	svc, _ := newChatService(t, ChatOptions{})

	res, err := svc.SendMessage(context.Background(), "s1", "How to File an FIR?")
	require.NoError(t, err)

	assert.False(t, res.UserMessage.IsBot)
	assert.True(t, res.BotMessage.IsBot)
	assert.Equal(t, "criminal", res.BotMessage.Category)
	assert.Equal(t, legal.SourceTemplate, res.Source)
	assert.True(t, strings.HasPrefix(res.BotMessage.Content, "**How to File an FIR"))
	assert.NotZero(t, res.UserMessage.ID)
	assert.NotZero(t, res.BotMessage.ID)

	history, err := svc.GetHistory(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "How to File an FIR?", history[0].Content)
	assert.True(t, history[1].IsBot)
}

func TestSendMessageRequiresSession(t *testing.T) {
	svc, _ := newChatService(t, ChatOptions{})
	_, err := svc.SendMessage(context.Background(), "  ", "hello")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSessionIDLengthIsBounded(t *testing.T) {
	svc, store := newChatService(t, ChatOptions{})
	tooLong := strings.Repeat("s", MaxSessionIDLength+1)

	_, err := svc.SendMessage(context.Background(), tooLong, "hello")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.GetHistory(context.Background(), tooLong)
	assert.ErrorIs(t, err, ErrInvalidInput)

	stored, err := store.Messages().ListBySessionID(tooLong)
	require.NoError(t, err)
	assert.Empty(t, stored)

	longest := strings.Repeat("é", MaxSessionIDLength)
	_, err = svc.SendMessage(context.Background(), longest, "hello")
	require.NoError(t, err)
}

func TestSendMessageEmptyContentFallsBackToGeneral(t *testing.T) {
	svc, _ := newChatService(t, ChatOptions{})

	res, err := svc.SendMessage(context.Background(), "s1", "   ")
	require.NoError(t, err)
	assert.Equal(t, "general", res.BotMessage.Category)
	assert.Equal(t, legal.FallbackResponse(legal.General), res.BotMessage.Content)
}

func TestSendMessageEnhancer(t *testing.T) {
	svc, _ := newChatService(t, ChatOptions{Enhancer: fakeEnhancer{out: "better answer"}})
	res, err := svc.SendMessage(context.Background(), "s1", "breach of contract")
	require.NoError(t, err)
	assert.Equal(t, "better answer", res.BotMessage.Content)

	failing, _ := newChatService(t, ChatOptions{Enhancer: fakeEnhancer{err: errors.New("timeout")}})
	res, err = failing.SendMessage(context.Background(), "s1", "breach of contract")
	require.NoError(t, err)
	assert.Equal(t, legal.SourceKnowledge, res.Source)
	assert.True(t, strings.HasPrefix(res.BotMessage.Content, "**What constitutes a valid contract?**"))
}

func TestSendMessageQueuesWhenPublisherConfigured(t *testing.T) {
	pub := &fakePublisher{}
	cache := newFakeCache()
	svc, store := newChatService(t, ChatOptions{Publisher: pub, HistoryCache: cache})

	res, err := svc.SendMessage(context.Background(), "s1", "tenant eviction")
	require.NoError(t, err)

	require.Len(t, pub.published, 2)
	assert.Zero(t, res.UserMessage.ID)
	assert.True(t, cache.dirty["s1"])

	stored, err := store.Messages().ListBySessionID("s1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSendMessageFallsBackToStoreWhenPublishFails(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc, store := newChatService(t, ChatOptions{Publisher: pub})

	_, err := svc.SendMessage(context.Background(), "s1", "tenant eviction")
	require.NoError(t, err)

	stored, err := store.Messages().ListBySessionID("s1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestGetHistoryUsesCleanCache(t *testing.T) {
	cache := newFakeCache()
	svc, _ := newChatService(t, ChatOptions{HistoryCache: cache})

	_, err := svc.SendMessage(context.Background(), "s1", "hello")
	require.NoError(t, err)

	first, err := svc.GetHistory(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Len(t, cache.history["s1"], 2)

	cache.history["s1"] = first[:1]
	cached, err := svc.GetHistory(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	cache.dirty["s1"] = true
	fresh, err := svc.GetHistory(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestWelcomeAndSessionID(t *testing.T) {
	svc, _ := newChatService(t, ChatOptions{})
	assert.Contains(t, svc.Welcome(), "Welcome to AI Legal ChatBot")

	a, b := svc.NewSessionID(), svc.NewSessionID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
