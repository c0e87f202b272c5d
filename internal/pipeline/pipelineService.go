package pipeline

import (
	"context"
	"errors"
	"os"

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/llm"
	"github.com/akolanti/LegalDocAPI/internal/metrics"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/extract"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/language"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

// Service is the only surface the worker calls - it doesn't need to know
// the extractor, the language models or the llm behind it.
type Service interface {
	ProcessBatch(ctx context.Context, job jobModel.Job) jobModel.Job
	ProcessDocument(ctx context.Context, job jobModel.Job) jobModel.Job
	ProcessDirectory(ctx context.Context, rootPath string) ([]docModel.Record, error)
}

type service struct {
	extractor   extract.Extractor
	detector    language.Detector
	llmProvider llm.Provider
	logger      *logger_i.Logger
}

// NewService constructor - dependencies come in as interfaces so tests can
// swap real clients for mocks.
func NewService(ex extract.Extractor, det language.Detector, provider llm.Provider) Service {
	return &service{
		extractor:   ex,
		detector:    det,
		llmProvider: provider,
		logger:      logger_i.NewLogger("Pipeline Service :"),
	}
}

// ProcessBatch runs the whole directory tree named by the job payload.
// The only batch-fatal condition is an unreadable root - every per-file
// failure is swallowed by the step that hit it.
func (s *service) ProcessBatch(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "JobId", job.Id)

	job.CurrentStep = jobModel.WalkingTree
	inMethodLogger.Info("Starting batch analysis", "root", job.JobPayload.RootPath)

	records, err := s.ProcessDirectory(ctx, job.JobPayload.RootPath)
	if err != nil {
		return s.jobError(job, err, "BATCH_WALK_FAILURE", false)
	}

	inMethodLogger.Info("Batch analysis complete", "documents", len(records))
	return returnOutput(job, records)
}

// ProcessDocument analyzes one uploaded file and removes the temp upload
// afterwards.
func (s *service) ProcessDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "JobId", job.Id)

	docPath := job.JobPayload.DocumentPath
	docType := extract.GetDocType(docPath)
	if docType == docModel.ERR {
		return s.jobError(job, errors.New("unsupported document type"), "UNSUPPORTED_DOC_TYPE", false)
	}

	record, ok := s.processFile(ctx, &job, docPath, docType)
	if !ok {
		return s.jobError(job, errors.New("text extraction failed"), "EXTRACTION_FAILURE", false)
	}

	if err := os.Remove(docPath); err != nil {
		inMethodLogger.Error("Error removing uploaded file", "error", err)
	}

	inMethodLogger.Info("Document analysis complete", "docType", record.DocType)
	return returnOutput(job, []docModel.Record{record})
}

// processFile is the per-file pipeline: extract -> detect -> classify ->
// analyze. Returns ok=false only when extraction yields nothing - that
// file is skipped with no record.
func (s *service) processFile(ctx context.Context, job *jobModel.Job, path string, docType docModel.DocType) (docModel.Record, bool) {
	text, err := s.executeExtractionStep(job, path, docType)
	if err != nil || text == "" {
		return docModel.Record{}, false
	}

	record := docModel.Record{
		FilePath:  path,
		Languages: s.executeLanguageStep(job, text),
	}

	record.DocType = s.executeClassificationStep(ctx, job, text)
	record.Analysis = s.executeAnalysisStep(ctx, job, text, record.DocType, record.PrimaryLanguage())

	metrics.CountProcessedDocument(record.DocType)
	return record, true
}

func returnOutput(job jobModel.Job, records []docModel.Record) jobModel.Job {
	job.JobPayload.Records = records
	job.CurrentStep = jobModel.Complete
	return job
}
