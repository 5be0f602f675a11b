package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"legalassist/internal/ai"
)

const (
	visionSystemPrompt = "You are an OCR engine. Transcribe the text of legal documents exactly as written."
	visionUserPrompt   = `Transcribe all text in this image. Keep the original line breaks. Respond with JSON: {"text": "...", "confidence": 0-100}. Use an empty text if nothing is readable.`
	visionMaxTokens    = 4000
)

// VisionExtractor reads document images through an OpenAI-compatible vision
// model.
type VisionExtractor struct {
	client ai.Completer
	cfg    ai.ChatConfig
	maxDim int
}

func NewVisionExtractor(client ai.Completer, cfg ai.ChatConfig, maxDim int) *VisionExtractor {
	return &VisionExtractor{client: client, cfg: cfg, maxDim: maxDim}
}

func (e *VisionExtractor) Extract(ctx context.Context, image []byte) (Result, error) {
	prepared, err := Prepare(image, e.maxDim)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(prepared)
	out, err := e.client.Complete(ctx, e.cfg, []ai.ChatMessage{
		{Role: "system", Content: visionSystemPrompt},
		{Role: "user", Content: []ai.ContentPart{
			{Type: "text", Text: visionUserPrompt},
			{Type: "image_url", ImageURL: &ai.ImageURL{URL: dataURL}},
		}},
	}, ai.CompletionOptions{MaxTokens: visionMaxTokens, JSON: true})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	res := parseTranscription(out)
	if res.Text == "" {
		return Result{}, fmt.Errorf("%w: no readable text", ErrExtraction)
	}
	return res, nil
}

// parseTranscription accepts the requested JSON shape and falls back to the
// raw reply with unknown confidence.
func parseTranscription(raw string) Result {
	raw = strings.TrimSpace(raw)
	if gjson.Valid(raw) && gjson.Get(raw, "text").Exists() {
		conf := gjson.Get(raw, "confidence").Float()
		if conf < 0 {
			conf = 0
		}
		if conf > 100 {
			conf = 100
		}
		return Result{
			Text:       strings.TrimSpace(gjson.Get(raw, "text").String()),
			Confidence: conf,
		}
	}
	return Result{Text: raw}
}
