package app

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"legalassist/internal/ai"
	"legalassist/internal/document"
	"legalassist/internal/model"
	"legalassist/internal/ocr"
	"legalassist/internal/pkg/pdfextract"
	"legalassist/internal/repository"
)

const (
	// ExtractionFailedMessage is stored as the extracted text when OCR or PDF
	// parsing fails.
	ExtractionFailedMessage = "OCR processing failed. Please ensure the image is clear and contains readable text."
	// UnsupportedExtractionMessage is stored for accepted files we cannot read.
	UnsupportedExtractionMessage = "Document uploaded successfully. Text extraction is currently supported for image and PDF files only."

	minAnalysisLength = 100
)

var allowedMIME = regexp.MustCompile(`jpeg|jpg|png|pdf|doc|docx|msword|octet-stream`)

type fileKind int

const (
	kindOther fileKind = iota
	kindImage
	kindPDF
)

var allowedExtensions = map[string]fileKind{
	".jpeg": kindImage,
	".jpg":  kindImage,
	".png":  kindImage,
	".pdf":  kindPDF,
	".doc":  kindOther,
	".docx": kindOther,
}

type DocumentSummarizer interface {
	SummarizeDocument(ctx context.Context, text string) (*ai.DocumentSummary, error)
}

type DocumentService struct {
	store      repository.DocumentStore
	extractor  ocr.Extractor
	summarizer DocumentSummarizer
	maxBytes   int64
	logger     *zap.Logger
	now        func() time.Time
}

type UploadInput struct {
	SessionID   string
	Filename    string
	ContentType string
	Data        []byte
}

type UploadResult struct {
	Document model.LegalDocument `json:"document"`
	Analysis *document.Analysis  `json:"analysis,omitempty"`
}

// NewDocumentService wires the upload pipeline. summarizer may be nil.
func NewDocumentService(
	store repository.DocumentStore,
	extractor ocr.Extractor,
	summarizer DocumentSummarizer,
	maxBytes int64,
	logger *zap.Logger,
) *DocumentService {
	if extractor == nil {
		extractor = ocr.Disabled{}
	}
	return &DocumentService{
		store:      store,
		extractor:  extractor,
		summarizer: summarizer,
		maxBytes:   maxBytes,
		logger:     logger.Named("document"),
		now:        time.Now,
	}
}

// Upload extracts text from an uploaded file, analyzes it when there is
// enough of it and stores the result. Extraction failures are recorded on the
// document, not returned.
func (s *DocumentService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	sessionID, err := normalizeSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}
	filename := filepath.Base(strings.TrimSpace(input.Filename))
	if filename == "" || filename == "." || len(input.Data) == 0 {
		return nil, ErrInvalidInput
	}
	if s.maxBytes > 0 && int64(len(input.Data)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	kind, ok := classifyFile(filename, input.ContentType)
	if !ok {
		return nil, ErrUnsupportedFile
	}

	raw, extracted, readable := s.extract(ctx, kind, input.Data, filename)

	doc := model.LegalDocument{
		Filename:      filename,
		OriginalText:  raw,
		ExtractedText: extracted,
		SessionID:     sessionID,
		UploadedAt:    s.now(),
	}

	var analysis *document.Analysis
	if readable && utf8.RuneCountInString(extracted) > minAnalysisLength {
		a := s.analyze(ctx, extracted)
		analysis = &a
		doc.Summary = document.Report(a)
	}

	if err := s.store.Create(&doc); err != nil {
		return nil, err
	}
	return &UploadResult{Document: doc, Analysis: analysis}, nil
}

// extract returns the raw text, the normalized text and whether extraction
// succeeded.
func (s *DocumentService) extract(ctx context.Context, kind fileKind, data []byte, filename string) (string, string, bool) {
	switch kind {
	case kindImage:
		res, err := s.extractor.Extract(ctx, data)
		if err != nil {
			s.logger.Warn("ocr failed", zap.String("filename", filename), zap.Error(err))
			return "", ExtractionFailedMessage, false
		}
		s.logger.Debug("ocr done", zap.String("filename", filename), zap.Float64("confidence", res.Confidence))
		return res.Text, document.Normalize(res.Text), true
	case kindPDF:
		text, err := pdfextract.ExtractText(data)
		if err != nil {
			s.logger.Warn("pdf extraction failed", zap.String("filename", filename), zap.Error(err))
			return "", ExtractionFailedMessage, false
		}
		return text, document.Normalize(text), true
	default:
		return "", UnsupportedExtractionMessage, false
	}
}

func (s *DocumentService) analyze(ctx context.Context, text string) document.Analysis {
	a := document.Analyze(text)
	if s.summarizer == nil {
		return a
	}
	summary, err := s.summarizer.SummarizeDocument(ctx, text)
	if err != nil {
		s.logger.Warn("llm summary failed, using template summary", zap.Error(err))
		return a
	}
	a.Summary = summary.Summary
	return a
}

// AnalyzeText classifies caller supplied text directly. Blank text yields the
// generic type, the general area and the insufficient-text summary.
func (s *DocumentService) AnalyzeText(text string) document.Analysis {
	return document.Analyze(text)
}

func (s *DocumentService) ListDocuments(sessionID string) ([]model.LegalDocument, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.store.ListBySessionID(sessionID)
}

// GetDocument only returns documents that belong to sessionID.
func (s *DocumentService) GetDocument(sessionID string, id uint) (*model.LegalDocument, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	doc, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.SessionID != sessionID {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}

func classifyFile(filename, contentType string) (fileKind, bool) {
	kind, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return kindOther, false
	}
	if ct := strings.ToLower(strings.TrimSpace(contentType)); ct != "" && !allowedMIME.MatchString(ct) {
		return kindOther, false
	}
	return kind, true
}
