package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	enhanceSystemPrompt = "You are an AI legal assistant specializing in Indian law. Provide accurate, helpful legal information while always recommending professional legal consultation for specific cases."
	summarySystemPrompt = "You are a legal document analysis expert specializing in Indian law. Provide clear, accurate summaries of legal documents."

	enhanceMaxTokens = 800
	summaryMaxTokens = 1000
)

// Completer is the part of the chat completion client the assistant uses.
type Completer interface {
	Complete(ctx context.Context, cfg ChatConfig, messages []ChatMessage, opts CompletionOptions) (string, error)
}

// DocumentSummary is the model's structured reading of a document.
type DocumentSummary struct {
	Summary   string
	KeyPoints []string
	LegalArea string
}

// LegalAssistant wraps prompts for response enhancement and document
// summarization. Every failure is reported as ErrLLM.
type LegalAssistant struct {
	client Completer
	cfg    ChatConfig
}

func NewLegalAssistant(client Completer, cfg ChatConfig) *LegalAssistant {
	return &LegalAssistant{client: client, cfg: cfg}
}

func (a *LegalAssistant) EnhanceResponse(ctx context.Context, query, basic string) (string, error) {
	prompt := fmt.Sprintf(`As an AI legal assistant for Indian law, enhance this basic response to be more helpful and comprehensive.

User Query: %s
Basic Response: %s

Please enhance the response by:
1. Adding more specific details about Indian law
2. Including relevant legal provisions or acts
3. Providing step-by-step guidance where applicable
4. Adding important disclaimers
5. Keeping the tone professional but accessible

Provide only the enhanced response text, no JSON format needed.`, query, basic)

	out, err := a.client.Complete(ctx, a.cfg, []ChatMessage{
		{Role: "system", Content: enhanceSystemPrompt},
		{Role: "user", Content: prompt},
	}, CompletionOptions{MaxTokens: enhanceMaxTokens})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty enhancement", ErrLLM)
	}
	return out, nil
}

func (a *LegalAssistant) SummarizeDocument(ctx context.Context, text string) (*DocumentSummary, error) {
	prompt := fmt.Sprintf(`Analyze this legal document text and provide a comprehensive summary. Focus on:
1. Main legal points and clauses
2. Key obligations and rights
3. Important dates and deadlines
4. Legal implications
5. Area of law (property, criminal, civil, family, etc.)

Text to analyze:
%s

Respond with JSON in this format:
{
  "summary": "Detailed summary of the document",
  "keyPoints": ["Point 1", "Point 2", "Point 3"],
  "legalArea": "property/criminal/civil/family/other"
}`, text)

	out, err := a.client.Complete(ctx, a.cfg, []ChatMessage{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: prompt},
	}, CompletionOptions{MaxTokens: summaryMaxTokens, JSON: true})
	if err != nil {
		return nil, err
	}
	return parseDocumentSummary(out)
}

func parseDocumentSummary(raw string) (*DocumentSummary, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: summary is not json", ErrLLM)
	}

	parsed := gjson.Parse(raw)
	summary := strings.TrimSpace(parsed.Get("summary").String())
	if summary == "" {
		return nil, fmt.Errorf("%w: summary missing", ErrLLM)
	}

	out := &DocumentSummary{
		Summary:   summary,
		LegalArea: strings.ToLower(strings.TrimSpace(parsed.Get("legalArea").String())),
		KeyPoints: make([]string, 0),
	}
	if out.LegalArea == "" {
		out.LegalArea = "general"
	}
	for _, p := range parsed.Get("keyPoints").Array() {
		if s := strings.TrimSpace(p.String()); s != "" {
			out.KeyPoints = append(out.KeyPoints, s)
		}
	}
	return out, nil
}
