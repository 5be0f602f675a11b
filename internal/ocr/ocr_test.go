package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalassist/internal/ai"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFitKeepsAspectRatio(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))

	out := fit(img, 200)
	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 50, out.Bounds().Dy())

	same := fit(img, 1000)
	assert.Equal(t, img, same)
}

func TestPrepareReencodesAsJPEG(t *testing.T) {
	out, err := Prepare(pngBytes(t, 300, 120), 150)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 150, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

func TestPrepareRejectsNonImage(t *testing.T) {
	_, err := Prepare([]byte("not an image"), 100)
	assert.Error(t, err)
}

type stubCompleter struct {
	out      string
	err      error
	messages []ai.ChatMessage
}

func (s *stubCompleter) Complete(_ context.Context, _ ai.ChatConfig, messages []ai.ChatMessage, _ ai.CompletionOptions) (string, error) {
	s.messages = messages
	return s.out, s.err
}

func TestVisionExtractor(t *testing.T) {
	stub := &stubCompleter{out: `{"text":"SALE DEED\nconsideration","confidence":87.5}`}
	res, err := NewVisionExtractor(stub, ai.ChatConfig{}, 512).Extract(context.Background(), pngBytes(t, 64, 64))

	require.NoError(t, err)
	assert.Equal(t, Result{Text: "SALE DEED\nconsideration", Confidence: 87.5}, res)

	parts, ok := stub.messages[1].Content.([]ai.ContentPart)
	require.True(t, ok)
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[1].ImageURL.URL, "data:image/jpeg;base64,"))
}

func TestVisionExtractorFailures(t *testing.T) {
	img := pngBytes(t, 16, 16)
	tests := []struct {
		name  string
		stub  *stubCompleter
		image []byte
	}{
		{"bad image", &stubCompleter{out: `{"text":"x"}`}, []byte("junk")},
		{"llm error", &stubCompleter{err: ai.ErrLLM}, img},
		{"empty text", &stubCompleter{out: `{"text":"  ","confidence":10}`}, img},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVisionExtractor(tt.stub, ai.ChatConfig{}, 512).Extract(context.Background(), tt.image)
			assert.ErrorIs(t, err, ErrExtraction)
		})
	}
}

func TestParseTranscriptionFallsBackToRawText(t *testing.T) {
	assert.Equal(t, Result{Text: "plain reply"}, parseTranscription("  plain reply "))
	assert.Equal(t, 100.0, parseTranscription(`{"text":"a","confidence":140}`).Confidence)
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Extract(context.Background(), nil)
	assert.ErrorIs(t, err, ErrExtraction)
}
