package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

// Extractor converts a document on disk into raw text. A returned error
// means "skip this file" - the orchestrator never emits a record for it.
type Extractor interface {
	ExtractText(path string, docType docModel.DocType) (string, error)
}

var logger = logger_i.NewLogger("TextExtraction")

type fileExtractor struct{}

func NewFileExtractor() Extractor {
	return fileExtractor{}
}

func (fileExtractor) ExtractText(path string, docType docModel.DocType) (string, error) {
	switch docType {
	case docModel.PDF:
		return extractPDF(path)
	case docModel.DOCX:
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("unsupported content type: %s", docType)
	}
}

// GetDocType resolves the document format from the file extension.
func GetDocType(docPath string) docModel.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return docModel.PDF
	case ".docx":
		return docModel.DOCX
	default:
		return docModel.ERR
	}
}
