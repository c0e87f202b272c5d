package extract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

func extractPDF(path string) (string, error) {
	logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		if strings.Contains(err.Error(), "encrypted") {
			//no password attempt - encrypted documents are skipped outright
			logger.Error("PDF is encrypted", "path", path)
			return "", fmt.Errorf("pdf is encrypted: %s", path)
		}
		logger.Error("failed opening of pdf file", "path", path, "error", err)
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var text strings.Builder
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			logger.Error("Error parsing page content", "page #", i, "Error", err)
			continue
		}
		text.WriteString(content)
	}
	return text.String(), nil
}

// File reads a .docx file and returns the paragraphs newline-joined
func extractDOCX(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc", "path", path, "error", err)
		return "", fmt.Errorf("failed to extract docx: %w", err)
	}
	return text, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractionTimeout):
		logger.Error("pageExtract", "timeout", config.PageExtractionTimeout)
		return "", errors.New("timeout")
	}
}
