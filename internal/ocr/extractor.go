package ocr

import (
	"context"
	"errors"
)

// ErrExtraction is returned when no text could be read from an image.
var ErrExtraction = errors.New("ocr extraction failed")

// Result is recognized text with the engine's confidence in the range 0-100.
type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type Extractor interface {
	Extract(ctx context.Context, image []byte) (Result, error)
}

// Disabled is used when no OCR backend is configured.
type Disabled struct{}

func (Disabled) Extract(context.Context, []byte) (Result, error) {
	return Result{}, errors.Join(ErrExtraction, errors.New("no ocr backend configured"))
}
