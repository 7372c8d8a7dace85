package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	IngestInit       InternalStatus = "IngestInit"
	IngestExtracting InternalStatus = "IngestExtracting"
	IngestChunking   InternalStatus = "IngestChunking"
	IngestEmbedding  InternalStatus = "IngestEmbedding"
	IngestIndexing   InternalStatus = "IngestIndexing"
	Error            InternalStatus = "Error"
	Complete         InternalStatus = "Complete"
)

// Job tracks one document's background ingestion into a session. A multi-file
// upload fans out to one job per file so a sibling's failure stays isolated.
type Job struct {
	Id          string         `json:"id"`
	SessionId   string         `json:"session_id"`
	TraceId     string         `json:"trace_id"`
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
	IngestFileName string               `json:"ingest_file_name,omitempty"`
	IngestURL      string               `json:"ingest_url,omitempty"`
	ContentType    commonModels.DocType `json:"content_type,omitempty"`
	FragmentsAdded int                  `json:"fragments_added,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

// SessionStore is the session lifecycle surface the transport layer consumes.
// Chat history rides on the same store, keyed by session.
type SessionStore interface {
	InitSession(ctx context.Context, id string) error
	ValidateSession(ctx context.Context, id string) bool
	DropSession(ctx context.Context, id string) error
	SaveExchange(ctx context.Context, sessionId string, question string, answer string) error
	GetHistory(ctx context.Context, sessionId string) ([]string, error)
}
