package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/api"
	"github.com/akolanti/LegalDocAPI/internal/domain/docModel"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:           string(job.Status),
		AnalysisResponse: ToAnalysisResponse(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToAnalysisResponse(payload jobModel.JobPayload) *api.AnalysisResponse {
	if len(payload.Records) == 0 {
		return nil
	}

	return &api.AnalysisResponse{
		RootPath:  payload.RootPath,
		Documents: ToDocumentResults(payload.Records),
	}
}

func ToDocumentResults(records []docModel.Record) []api.DocumentResult {
	documents := make([]api.DocumentResult, 0, len(records))
	for _, record := range records {
		documents = append(documents, api.DocumentResult{
			FilePath:  record.FilePath,
			DocType:   record.DocType,
			Languages: record.Languages,
			Analysis:  record.Analysis,
		})
	}
	return documents
}

func ToReportResponse(jobId string, records []docModel.Record) api.ReportResponse {
	return api.ReportResponse{
		JobId:     jobId,
		Documents: ToDocumentResults(records),
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
