package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/adapter"
	"github.com/akolanti/LegalDocAPI/internal/adapter/utils"
	"github.com/akolanti/LegalDocAPI/internal/api"
	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id           string
	traceId      string
	jobType      jobModel.JobType
	rootPath     string
	documentName string
	documentPath string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// AnalyzeHandler godoc
// @Summary      Start a batch analysis job
// @Description  Accepts a directory path, queues a background job that analyzes every PDF/DOCX under it, and returns a job ID to track status.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.AnalyzeRequest   true  "Root directory to analyze"
// @Success      202      {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400      {object}  api.JobResponse      "Invalid request data or unreadable directory"
// @Router       /analyze [post]
func AnalyzeHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.AnalyzeRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Analyze handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.Path == "" {
			logRH.Warn("Bad Analyze Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		//inability to read the root is the only batch-fatal condition,
		//so reject it up front instead of queueing a doomed job
		info, err := os.Stat(requestData.Path)
		if err != nil || !info.IsDir() {
			logRH.Warn("Unreadable analysis root", "path", requestData.Path, "error", err)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Path is not a readable directory")
			return
		}

		newData := newJobData{
			id:       utils.GetNewUUID(),
			traceId:  request.Context().Value(config.TRACE_ID_KEY).(string),
			jobType:  jobModel.JobTypeBatch,
			rootPath: requestData.Path,
		}
		CreateNewJob(newData)
		writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newData.id))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "Successful retrieval of job status"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// GetReportHandler godoc
// @Summary      Get per-document report
// @Description  Returns the persisted per-document records for a finished job.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.ReportResponse  "Per-document analysis records"
// @Failure      404  {object}  api.JobResponse     "No report for this job"
// @Router       /report/{id} [get]
func GetReportHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		records, err := GetJobReport(idString, r.Context().Value(config.TRACE_ID_KEY).(string))
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, idString, "Report lookup failed")
			return
		}
		if len(records) == 0 {
			WriteErrorResponse(w, http.StatusNotFound, idString, "No report for this job")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToReportResponse(idString, records))
	}
}

// UploadHandler handles the uploading of a single PDF or DOCX document for analysis.
// @Summary      Upload a document for analysis
// @Description  Receives a file via multipart/form-data, saves it to a temporary directory, and queues a single-document analysis job.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        document_name  formData  string  true  "The display name of the document"
// @Param        document       formData  file    true  "The PDF or DOCX file to upload"
// @Success      202  {object}  api.InitJobResponse "Accepted - returns job id"
// @Failure      400  {object}  api.JobResponse "Bad Request - Missing fields, unsupported type or file too large"
// @Failure      500  {object}  api.JobResponse "Internal Server Error - Storage or Write Error"
// @Router       /upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		targetDir, errString := getTargetDirectory()
		if errString != "" {
			logRH.Error("Couldn't get target directory :", "err", errString)
			WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
			return
		}

		const maxUploadSize = 32 << 20 //32mb
		err := r.ParseMultipartForm(maxUploadSize)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
			return
		}

		docName := r.FormValue("document_name")
		if docName == "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", "document_name is required")
			return
		}

		fileReader, fileMetadata, err := r.FormFile("document")
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, docName, "Could not retrieve file")
			return
		}
		defer fileReader.Close()

		if !isSupportedUpload(fileMetadata.Filename) {
			WriteErrorResponse(w, http.StatusBadRequest, docName, "Only .pdf and .docx documents are supported")
			return
		}

		filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileMetadata.Filename)
		tempFilePath := filepath.Join(targetDir, filename)
		destinationFileWriter, err := os.Create(tempFilePath)
		if err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Storage error")
			return
		}
		defer destinationFileWriter.Close()

		if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
			WriteErrorResponse(w, http.StatusInternalServerError, docName, "Write error")
			return
		}

		newData := newJobData{
			id:           utils.GetNewUUID(),
			traceId:      r.Context().Value(config.TRACE_ID_KEY).(string),
			jobType:      jobModel.JobTypeDocument,
			documentName: docName,
			documentPath: tempFilePath,
		}
		CreateNewJob(newData)
		writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newData.id))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

func isSupportedUpload(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".pdf") || strings.HasSuffix(lower, ".docx")
}
