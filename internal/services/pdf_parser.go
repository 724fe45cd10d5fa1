package services

import (
	"fmt"
	"os"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Text layers shorter than this are treated as a failed parse, e.g. scanned PDFs.
const minPDFTextLength = 100

type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

type pdfParserService struct {
	log *zap.Logger
}

func NewPDFParserService(log *zap.Logger) PDFParserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &pdfParserService{log: log}
}

// ExtractText reads the PDF text layer and falls back to docconv when the
// primary parser fails or yields too little text.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	text, err := p.extractTextLayer(filePath)
	if err == nil && len(strings.TrimSpace(text)) >= minPDFTextLength {
		return text, nil
	}

	p.log.Debug("primary PDF parser insufficient, trying fallback",
		zap.String("file", filePath),
		zap.Error(err),
	)

	fallback, fallbackErr := p.extractWithDocconv(filePath)
	if fallbackErr != nil {
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w (fallback: %v)", err, fallbackErr)
		}
		// keep the short primary result rather than nothing
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
		return "", fmt.Errorf("failed to extract PDF text: %w", fallbackErr)
	}

	if strings.TrimSpace(fallback) == "" && strings.TrimSpace(text) != "" {
		return text, nil
	}
	return fallback, nil
}

func (p *pdfParserService) extractTextLayer(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			p.log.Debug("failed to read PDF page", zap.Int("page", pageIndex), zap.Error(err))
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func (p *pdfParserService) extractWithDocconv(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	text, _, err := docconv.ConvertPDF(f)
	if err != nil {
		return "", fmt.Errorf("failed to convert PDF: %w", err)
	}

	return text, nil
}
