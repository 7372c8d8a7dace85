package rag

import (
	"context"
	"errors"
	"time"

	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
	"github.com/akolanti/StudyRAG/internal/metrics"
	"github.com/akolanti/StudyRAG/internal/rag/embedding"
	"github.com/akolanti/StudyRAG/internal/rag/ingest"
	"github.com/akolanti/StudyRAG/internal/rag/llm"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

// Service is the public contract the transport and worker layers call. The
// lowercase struct below keeps the index, embedder and llm provider private -
// handlers never reach past this interface.
type Service interface {
	Chat(ctx context.Context, sessionId string, query string, history []string) (studyModel.ChatResult, error)
	Teach(ctx context.Context, sessionId string, query string, language string) (studyModel.ChatResult, error)
	Summarize(ctx context.Context, req studyModel.SummaryRequest) (string, error)
	GenerateQuiz(ctx context.Context, req studyModel.QuizRequest) (studyModel.QuizResult, error)
	AnalyzeWeakSpots(ctx context.Context, questions []studyModel.QuizQuestion, answers map[string]string) studyModel.QuizAnalysis
	GenerateSamplePaper(ctx context.Context, sessionId string, pyqText string) (studyModel.PaperResult, error)
	GenerateSlideOutline(ctx context.Context, sessionId string, topic string, numSlides int) ([]studyModel.Slide, error)
	IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	index     sessionIndex.Index
	llm       llm.Provider
	embedder  embedding.Embedder
	extractor ingest.Extractor
	logger    *logger_i.Logger
}

// NewService wires the capability providers in. Tests swap any of them for
// function-field mocks.
func NewService(index sessionIndex.Index, provider llm.Provider, em embedding.Embedder, extractor ingest.Extractor) Service {
	return &service{
		index:     index,
		llm:       provider,
		embedder:  em,
		extractor: extractor,
		logger:    logger_i.NewLogger("RAG Service :"),
	}
}

func (s *service) IngestDocument(ctx context.Context, job jobModel.Job) jobModel.Job {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("Document_ingestion", time.Since(start)) }()
	j := ingest.ProcessDocumentIngestion(ctx, job, s.embedder, s.index, s.extractor)
	if j.Status != jobModel.JobStatusComplete {
		return s.jobError(j, errors.New("ingest Document Failed"), "INGESTION_FAILURE", true)
	}
	return j
}
