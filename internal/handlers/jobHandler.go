package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/job"
	"github.com/akolanti/StudyRAG/internal/media"
	"github.com/akolanti/StudyRAG/internal/metrics"
	"github.com/akolanti/StudyRAG/internal/rag"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
	rag     rag.Service
	media   media.Service
	index   sessionIndex.Index
}

func InitHandlers(jobService *job.Service, ragService rag.Service, mediaService media.Service, index sessionIndex.Index) {
	once.Do(func() {
		handlerInstance = &JobHandler{
			service: jobService,
			rag:     ragService,
			media:   mediaService,
			index:   index,
		}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting handlers")
	})
}

// CreateNewJob queues one ingestion job. Every uploaded file gets its own job
// so a corrupt sibling never fails the rest of the batch.
func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new ingestion job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func sessionStore() jobModel.SessionStore {
	return handlerInstance.service.SessionStore
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.SessionId = newJob.sessionId
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.CurrentStep = jobModel.IngestInit
	_job.JobPayload.IngestFileName = newJob.documentName
	_job.JobPayload.IngestURL = newJob.documentSource
	_job.JobPayload.ContentType = newJob.contentType

	//metrics
	metrics.IncrementJobsInQueue()

	_job.Status = jobModel.JobStatusQueued
	if err := h.service.JobStore.SaveJob(context.WithValue(context.Background(), config.TRACE_ID_KEY, newJob.traceId), _job); err != nil {
		logJH.Error("Failed to save queued job", "err", err)
	}

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//ingestion involves batch embedding calls which take time, so every queued
	//document nudges the dispatcher; idle workers retire on their own
	atomic.AddInt64(&h.service.RequestCount, 1)
	metrics.StartDispatcherSignalCount() //metrics
	h.service.DispatcherChannel <- true
}
