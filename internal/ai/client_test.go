package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteSendsRequestAndParsesContent(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	client := NewOpenAICompatibleClient(5 * time.Second)
	out, err := client.Complete(context.Background(), ChatConfig{BaseURL: srv.URL + "/v1/", APIKey: "key", Model: "m"},
		[]ChatMessage{{Role: "user", Content: "hi"}}, CompletionOptions{MaxTokens: 10, JSON: true})

	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "m", got["model"])
	assert.EqualValues(t, 10, got["max_tokens"])
	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
}

func TestCompleteWrapsFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`},
		{"not json", http.StatusOK, `<html>`},
		{"no choices", http.StatusOK, `{"choices":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAICompatibleClient(time.Second).Complete(context.Background(),
				ChatConfig{BaseURL: srv.URL}, nil, CompletionOptions{})
			assert.ErrorIs(t, err, ErrLLM)
		})
	}
}

type stubCompleter struct {
	out      string
	err      error
	messages []ChatMessage
	opts     CompletionOptions
}

func (s *stubCompleter) Complete(_ context.Context, _ ChatConfig, messages []ChatMessage, opts CompletionOptions) (string, error) {
	s.messages = messages
	s.opts = opts
	return s.out, s.err
}

func TestEnhanceResponse(t *testing.T) {
	stub := &stubCompleter{out: "  enhanced  "}
	out, err := NewLegalAssistant(stub, ChatConfig{}).EnhanceResponse(context.Background(), "query", "basic")

	require.NoError(t, err)
	assert.Equal(t, "enhanced", out)
	require.Len(t, stub.messages, 2)
	assert.Contains(t, stub.messages[1].Content, "User Query: query")
	assert.Contains(t, stub.messages[1].Content, "Basic Response: basic")
}

func TestEnhanceResponseEmptyIsError(t *testing.T) {
	_, err := NewLegalAssistant(&stubCompleter{out: " "}, ChatConfig{}).EnhanceResponse(context.Background(), "q", "b")
	assert.ErrorIs(t, err, ErrLLM)
}

func TestSummarizeDocument(t *testing.T) {
	stub := &stubCompleter{out: "```json\n{\"summary\":\"A deed\",\"keyPoints\":[\"one\",\" \",\"two\"],\"legalArea\":\"Property\"}\n```"}
	got, err := NewLegalAssistant(stub, ChatConfig{}).SummarizeDocument(context.Background(), "text")

	require.NoError(t, err)
	assert.True(t, stub.opts.JSON)
	assert.Equal(t, &DocumentSummary{Summary: "A deed", KeyPoints: []string{"one", "two"}, LegalArea: "property"}, got)
}

func TestSummarizeDocumentRejectsBadPayload(t *testing.T) {
	for _, out := range []string{"not json", `{"keyPoints":[]}`} {
		_, err := NewLegalAssistant(&stubCompleter{out: out}, ChatConfig{}).SummarizeDocument(context.Background(), "text")
		assert.ErrorIs(t, err, ErrLLM)
	}
}
