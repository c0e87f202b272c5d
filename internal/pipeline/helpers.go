package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/metrics"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/analyze"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/classify"
)

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) executeExtractionStep(job *jobModel.Job, path string, docType docModel.DocType) (string, error) {
	job.CurrentStep = jobModel.Extracting

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	return s.extractor.ExtractText(path, docType)
}

func (s *service) executeLanguageStep(job *jobModel.Job, text string) []docModel.LanguageScore {
	job.CurrentStep = jobModel.DetectingLang

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("language_detection", time.Since(start)) }()

	return s.detector.DetectLanguages(text)
}

func (s *service) executeClassificationStep(ctx context.Context, job *jobModel.Job, text string) string {
	job.CurrentStep = jobModel.Classifying

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("classification", time.Since(start)) }()

	return classify.DocumentType(ctx, s.llmProvider, text)
}

func (s *service) executeAnalysisStep(ctx context.Context, job *jobModel.Job, text string, label string, lang string) string {
	job.CurrentStep = jobModel.Analyzing

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("analysis", time.Since(start)) }()

	return analyze.Document(ctx, s.llmProvider, text, label, lang)
}
