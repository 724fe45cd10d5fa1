package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.sajari.com/docconv"
	"go.uber.org/zap"

	internalErrors "alfredoptarigan/resume-matcher/internal/errors"
	"alfredoptarigan/resume-matcher/internal/logger"
)

// SupportedExtensions lists every file type TextExtractor can read.
var SupportedExtensions = []string{".pdf", ".docx", ".jpg", ".jpeg", ".png", ".txt"}

// IsSupportedExtension reports whether ext (with leading dot) can be extracted.
func IsSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, s := range SupportedExtensions {
		if s == ext {
			return true
		}
	}
	return false
}

type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ImageOCR turns an image into text.
type ImageOCR interface {
	ExtractImageText(ctx context.Context, data []byte, mimeType string) (string, error)
}

type textExtractor struct {
	pdfParser PDFParserService
	ocr       ImageOCR
	timeout   time.Duration
	log       *zap.Logger
}

// NewTextExtractor dispatches on file extension. ocr may be nil, in which
// case image files fail extraction.
func NewTextExtractor(pdfParser PDFParserService, ocr ImageOCR, timeout time.Duration, log *zap.Logger) TextExtractor {
	return &textExtractor{
		pdfParser: pdfParser,
		ocr:       ocr,
		timeout:   timeout,
		log:       logger.WithFields(log),
	}
}

func (e *textExtractor) Extract(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExtension(ext) {
		return "", internalErrors.NewUnsupportedFormatError(ext)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := e.run(ctx, func(ctx context.Context) (string, error) {
		return e.extract(ctx, path, ext)
	})
	if err != nil {
		return "", internalErrors.NewExtractionError(path, err)
	}

	e.log.Debug("📄 text extracted",
		zap.String(logger.FieldFile, filepath.Base(path)),
		zap.Int("characters", len(text)),
		zap.Duration("took", time.Since(start)),
	)

	return text, nil
}

func (e *textExtractor) extract(ctx context.Context, path, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return e.pdfParser.ExtractText(path)
	case ".docx":
		return extractDocx(path)
	case ".jpg", ".jpeg", ".png":
		return e.extractImage(ctx, path, ext)
	default:
		return extractPlainText(path)
	}
}

// run executes fn and gives up once ctx is done. Parsers that ignore ctx
// keep running in the background until they return.
func (e *textExtractor) run(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	type outcome struct {
		text string
		err  error
	}

	done := make(chan outcome, 1)
	go func() {
		text, err := fn(ctx)
		done <- outcome{text: text, err: err}
	}()

	select {
	case out := <-done:
		return out.text, out.err
	case <-ctx.Done():
		return "", fmt.Errorf("extraction aborted: %w", ctx.Err())
	}
}

func (e *textExtractor) extractImage(ctx context.Context, path, ext string) (string, error) {
	if e.ocr == nil {
		return "", errors.New("image OCR is not configured")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	mimeType := "image/jpeg"
	if ext == ".png" {
		mimeType = "image/png"
	}

	return e.ocr.ExtractImageText(ctx, data, mimeType)
}

func extractDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}

	return text, nil
}

func extractPlainText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}

	return strings.ToValidUTF8(string(content), ""), nil
}
