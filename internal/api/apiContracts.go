package api

import (
	"time"

	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type DocumentResult struct {
	FilePath  string                   `json:"file_path"`
	DocType   string                   `json:"doc_type"`
	Languages []docModel.LanguageScore `json:"languages"`
	Analysis  string                   `json:"analysis"`
}

type AnalysisResponse struct {
	RootPath  string           `json:"root_path,omitempty"`
	Documents []DocumentResult `json:"documents"`
}

type Result struct {
	Status           string            `json:"status"`
	AnalysisResponse *AnalysisResponse `json:"analysis,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type ReportResponse struct {
	JobId     string           `json:"job_id"`
	Documents []DocumentResult `json:"documents"`
}

// requests---------------------

type AnalyzeRequest struct {
	Path string `json:"path" validate:"required"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
