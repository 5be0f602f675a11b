package worker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legalassist/internal/model"
	"legalassist/internal/repository/memory"
)

type recordingAck struct {
	acked  bool
	nacked bool
}

func (r *recordingAck) Ack(bool) error {
	r.acked = true
	return nil
}

func (r *recordingAck) Nack(bool, bool) error {
	r.nacked = true
	return nil
}

func TestProcessPersistsMessage(t *testing.T) {
	store := memory.NewStore().Messages()
	w := NewMessagePersistWorker(nil, store, "q", zap.NewNop())

	body, err := json.Marshal(model.ChatMessage{
		SessionID: "s1",
		Content:   "hello",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	ack := &recordingAck{}
	w.process(body, ack)

	assert.True(t, ack.acked)
	got, err := store.ListBySessionID("s1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Content)
	assert.NotZero(t, got[0].ID)
}

func TestProcessRejectsMalformedPayload(t *testing.T) {
	w := NewMessagePersistWorker(nil, memory.NewStore().Messages(), "q", zap.NewNop())

	ack := &recordingAck{}
	w.process([]byte("{"), ack)

	assert.True(t, ack.nacked)
	assert.False(t, ack.acked)
}
