package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/LegalDocAPI/internal/config"
	jobmodel "github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/metrics"
)

// a batch over a large tree makes two model calls per file, so the job
// deadline is generous compared to a single request/response service
const jobExecutionTimeout = 30 * time.Minute

func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureJobMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, jobExecutionTimeout)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing job:", "job Id:", job.Id)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	if job.JobType == jobmodel.JobTypeBatch {
		job = _pipelineService.ProcessBatch(ctx, job)
	} else {
		job = _pipelineService.ProcessDocument(ctx, job)
	}

	if job.Status != jobmodel.JobStatusError {
		persistReport(ctx, job)
	}

	job.EndTime = time.Now()
	saveJobState(ctx, job, jobmodel.JobStatusComplete)
}

// persistReport appends every produced record to the report store so the
// per-document results survive the job payload TTL churn.
func persistReport(ctx context.Context, job jobmodel.Job) {
	job.CurrentStep = jobmodel.PersistingData
	for _, record := range job.JobPayload.Records {
		if err := _jobService.ReportStore.SaveRecord(ctx, job.Id, record); err != nil {
			logger.Error("Failed to save record to report store", "err", err, "file", record.FilePath)
		}
	}
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	if job.Status != jobmodel.JobStatusError {
		job.Status = jobStatus
	}
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job status", "err", err)
	}
}
