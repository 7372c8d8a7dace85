package ingest

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/metrics"
	"github.com/akolanti/StudyRAG/internal/rag/embedding"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

var logger = logger_i.NewLogger("Document Ingestion ")

// ProcessDocumentIngestion runs one document through extract -> chunk ->
// embed -> index, tagging every fragment with the job's session. Each upload
// file is its own job, so a failure here never touches sibling files.
func ProcessDocumentIngestion(ctx context.Context, job jobModel.Job, e embedding.Embedder, index sessionIndex.Index, extractor Extractor) jobModel.Job {
	log := logger.With("traceId", ctx.Value(config.TRACE_ID_KEY))

	docName := job.JobPayload.IngestFileName
	docPath := job.JobPayload.IngestURL

	log.Debug("Processing document", "filename", docName, "path", docPath, "session", job.SessionId)

	docType := job.JobPayload.ContentType
	if docType == "" {
		docType = DocTypeFor(docPath)
	}
	if docType == commonModels.ERR {
		log.Error("Unsupported document type", "path", docPath)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Unsupported document type"
		return job
	}

	doc := commonModels.Document{
		Id:          job.Id,
		Name:        docName,
		SessionId:   job.SessionId,
		ContentType: docType,
		IngestedAt:  time.Now(),
	}

	job.CurrentStep = jobModel.IngestExtracting
	pages, totalPages, err := extractor.Extract(ctx, docPath, docType)
	if err != nil {
		log.Error("Error extracting document content", "error", err)
		job.Status = jobModel.JobStatusError
		job.Error.Message = "Error extracting document content"
		return job
	}
	doc.TotalPages = totalPages

	job.CurrentStep = jobModel.IngestChunking
	fragments := PrepareFragments(pages, doc)
	log.Debug("Processing document", "Number of fragments: ", len(fragments))
	if len(fragments) == 0 {
		//nothing worth indexing - complete with zero added, not an error
		job.JobPayload.FragmentsAdded = 0
		job.Status = jobModel.JobStatusComplete
		removeTempFile(docPath)
		return job
	}

	added, err := BatchIngest(ctx, job.SessionId, fragments, index, e, &job)
	job.JobPayload.FragmentsAdded = added
	if err != nil {
		job.Status = jobModel.JobStatusError
		log.Error("Error processing document", "error", err, "applied", added)
		return job
	}

	removeTempFile(docPath)
	job.Status = jobModel.JobStatusComplete
	return job
}

// BatchIngest embeds and indexes fragments in batches of 100, returning the
// count actually applied. A mid-batch failure reports the true applied count
// alongside the error - never a silent partial success.
func BatchIngest(ctx context.Context, sessionId string, fragments []commonModels.Fragment, index sessionIndex.Index, embedder embedding.Embedder, job *jobModel.Job) (int, error) {
	batchSize := 100
	totalAdded := 0

	for i := 0; i < len(fragments); i += batchSize {
		end := i + batchSize
		if end > len(fragments) {
			end = len(fragments)
		}

		currentBatch := fragments[i:end]

		texts := make([]string, 0, len(currentBatch))
		for _, f := range currentBatch {
			texts = append(texts, f.Text)
		}

		job.CurrentStep = jobModel.IngestEmbedding
		vectors, err := embedder.BatchEmbedding(ctx, texts)
		if err != nil {
			return totalAdded, fmt.Errorf("embedding batch failed: %w", err)
		}

		job.CurrentStep = jobModel.IngestIndexing
		added, err := index.Add(ctx, sessionId, currentBatch, vectors)
		totalAdded += added
		metrics.CountFragmentsIndexed(added)
		if err != nil {
			return totalAdded, fmt.Errorf("indexing batch failed: %w", err)
		}
	}

	return totalAdded, nil
}

func removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Error("Error removing file", "error", err)
	}
}
