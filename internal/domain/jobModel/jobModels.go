package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	BatchInit      InternalStatus = "BatchInit"
	DocumentInit   InternalStatus = "DocumentInit"
	WalkingTree    InternalStatus = "WalkingTree"
	Extracting     InternalStatus = "TextExtraction"
	DetectingLang  InternalStatus = "LanguageDetection"
	Classifying    InternalStatus = "TypeClassification"
	Analyzing      InternalStatus = "Analysis"
	PersistingData InternalStatus = "PersistingReport"
	Error          InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeBatch    JobType = "BatchAnalyze"
	JobTypeDocument JobType = "DocumentAnalyze"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	//batch jobs analyze a whole directory tree
	RootPath string `json:"root_path,omitempty"`

	//single-document jobs analyze one uploaded file
	DocumentName string `json:"document_name,omitempty"`
	DocumentPath string `json:"document_path,omitempty"`

	Records []docModel.Record `json:"records,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

type ReportStore interface {
	SaveRecord(ctx context.Context, jobId string, record docModel.Record) error
	GetReport(ctx context.Context, jobId string) ([]docModel.Record, error)
}
