package app

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSessionIDLength matches the session_id column size.
const MaxSessionIDLength = 128

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrUnsupportedFile   = errors.New("only images and documents are allowed (JPEG, PNG, PDF, DOC, DOCX)")
	ErrFileTooLarge      = errors.New("file exceeds upload limit")
)

// normalizeSessionID trims a client supplied session id and rejects empty or
// oversized ids.
func normalizeSessionID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidInput
	}
	if utf8.RuneCountInString(id) > MaxSessionIDLength {
		return "", fmt.Errorf("%w: session id longer than %d characters", ErrInvalidInput, MaxSessionIDLength)
	}
	return id, nil
}
