package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	jobmodel "github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/metrics"
)

// executeJob runs one document ingestion end to end. The deadline covers
// extraction (which may poll an async transcription), batch embedding and
// indexing of a large document.
func executeJob(job jobmodel.Job) {
	start := time.Now()
	defer func() {
		metrics.CaptureWorkflowMetrics("ingest_"+string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, 5*time.Minute)
	defer cancel()
	logger.With("trace Id ", job.TraceId)
	logger.Debug("Processing ingestion job:", "job Id:", job.Id, "session:", job.SessionId)

	saveJobState(ctx, job, jobmodel.JobStatusRunning)

	job = _ragService.IngestDocument(ctx, job)

	job.EndTime = time.Now()
	saveJobState(ctx, job, job.Status)
}

func removeWorker(reason string) {

	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()

}

func saveJobState(ctx context.Context, job jobmodel.Job, jobStatus jobmodel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job status", "err", err)
	}
}
