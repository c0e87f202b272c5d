package pipeline

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/extract"
)

// ProcessDirectory walks the tree under rootPath and runs the per-file
// pipeline on every supported document. Files whose extraction fails are
// skipped silently; the returned error covers only the walk itself.
func (s *service) ProcessDirectory(ctx context.Context, rootPath string) ([]docModel.Record, error) {
	var records []docModel.Record
	job := jobModel.Job{} //step bookkeeping for the library-call path

	err := filepath.WalkDir(rootPath, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == rootPath {
				//unreadable root is the one batch-fatal condition
				return walkErr
			}
			s.logger.Warn("Skipping unreadable path", "path", path, "error", walkErr)
			return nil
		}
		if entry.IsDir() || !isSupportedFile(entry.Name()) {
			return nil
		}

		s.logger.Info("Processing document", "path", path)
		record, ok := s.processFile(ctx, &job, path, extract.GetDocType(path))
		if ok {
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// isSupportedFile keeps .pdf/.docx (case-insensitive) and drops the lock
// files office applications leave next to open documents.
func isSupportedFile(name string) bool {
	if strings.HasPrefix(name, config.TempFilePrefix) {
		return false
	}
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".pdf") || strings.HasSuffix(lower, ".docx")
}
