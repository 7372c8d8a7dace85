package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
	"github.com/akolanti/StudyRAG/internal/job"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

// MockRagService to track if ingestion jobs are executed
type MockRagService struct {
	ProcessedCount int32
}

func (m *MockRagService) IngestDocument(ctx context.Context, j jobModel.Job) jobModel.Job {
	atomic.AddInt32(&m.ProcessedCount, 1)
	j.Status = jobModel.JobStatusComplete
	return j
}

func (m *MockRagService) Chat(ctx context.Context, sessionId string, query string, history []string) (studyModel.ChatResult, error) {
	return studyModel.ChatResult{}, nil
}

func (m *MockRagService) Teach(ctx context.Context, sessionId string, query string, language string) (studyModel.ChatResult, error) {
	return studyModel.ChatResult{}, nil
}

func (m *MockRagService) Summarize(ctx context.Context, req studyModel.SummaryRequest) (string, error) {
	return "", nil
}

func (m *MockRagService) GenerateQuiz(ctx context.Context, req studyModel.QuizRequest) (studyModel.QuizResult, error) {
	return studyModel.QuizResult{}, nil
}

func (m *MockRagService) AnalyzeWeakSpots(ctx context.Context, questions []studyModel.QuizQuestion, answers map[string]string) studyModel.QuizAnalysis {
	return studyModel.QuizAnalysis{}
}

func (m *MockRagService) GenerateSamplePaper(ctx context.Context, sessionId string, pyqText string) (studyModel.PaperResult, error) {
	return studyModel.PaperResult{}, nil
}

func (m *MockRagService) GenerateSlideOutline(ctx context.Context, sessionId string, topic string, numSlides int) ([]studyModel.Slide, error) {
	return nil, nil
}

type MockJobStore struct {
	OnSaveJob func(ctx context.Context, job jobModel.Job) error
}

func (m *MockJobStore) GetJob(ctx context.Context, jobId string) (jobModel.Job, bool) {
	return jobModel.Job{}, false
}

func (m *MockJobStore) DeleteJob(ctx context.Context, jobID string) {}

func (m *MockJobStore) SaveJob(ctx context.Context, j jobModel.Job) error {
	if m.OnSaveJob != nil {
		return m.OnSaveJob(ctx, j)
	}
	return nil
}

type MockSessionStore struct{}

func (m *MockSessionStore) InitSession(ctx context.Context, id string) error { return nil }

func (m *MockSessionStore) ValidateSession(ctx context.Context, id string) bool { return true }

func (m *MockSessionStore) DropSession(ctx context.Context, id string) error { return nil }

func (m *MockSessionStore) SaveExchange(ctx context.Context, sessionId string, question string, answer string) error {
	return nil
}

func (m *MockSessionStore) GetHistory(ctx context.Context, sessionId string) ([]string, error) {
	return []string{}, nil
}

func TestWorkerPool_Flow(t *testing.T) {
	// 1. Setup
	jobSvc := &job.Service{
		JobChannel:        make(chan jobModel.Job, 10),
		DispatcherChannel: make(chan bool, 10),
		JobStore:          &MockJobStore{},
		SessionStore:      &MockSessionStore{},
	}
	mockRag := &MockRagService{}
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}

	InitServices(jobSvc, mockRag)
	InitWorkerPool(stopChan, wg)

	// Reset global state for test
	atomic.StoreInt64(&currentWorkerCount, 0)

	t.Run("Dispatcher creates worker on signal", func(t *testing.T) {
		// Signal dispatcher to create a worker
		jobSvc.DispatcherChannel <- true

		// Give it a millisecond to spawn
		time.Sleep(50 * time.Millisecond)

		count := atomic.LoadInt64(&currentWorkerCount)
		if count < 1 {
			t.Errorf("Expected at least 1 worker, got %d", count)
		}
	})

	t.Run("Worker processes an ingestion job", func(t *testing.T) {
		testJob := jobModel.Job{Id: "test-1", SessionId: "session-1"}
		jobSvc.JobChannel <- testJob

		// Wait for worker to pick up and process
		time.Sleep(50 * time.Millisecond)

		processed := atomic.LoadInt32(&mockRag.ProcessedCount)
		if processed != 1 {
			t.Errorf("Expected 1 job processed, got %d", processed)
		}
	})

	t.Run("Terminal state is persisted", func(t *testing.T) {
		var mu sync.Mutex
		var savedStates []jobModel.JobStatus
		jobSvc.JobStore = &MockJobStore{
			OnSaveJob: func(ctx context.Context, j jobModel.Job) error {
				mu.Lock()
				savedStates = append(savedStates, j.Status)
				mu.Unlock()
				return nil
			},
		}

		jobSvc.JobChannel <- jobModel.Job{Id: "test-2", SessionId: "session-1"}
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		if len(savedStates) != 2 {
			t.Fatalf("expected running + terminal saves, got %v", savedStates)
		}
		if savedStates[0] != jobModel.JobStatusRunning || savedStates[1] != jobModel.JobStatusComplete {
			t.Errorf("state sequence got %v, want [RUNNING COMPLETE]", savedStates)
		}
	})

	t.Run("Stop signal retires workers", func(t *testing.T) {
		// Send stop signal
		close(stopChan)

		// Wait for workers to exit
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			// Success
		case <-time.After(2 * time.Second):
			t.Error("Workers did not stop within timeout")
		}
	})
}

func TestWorker_IdleTimeout(t *testing.T) {
	// Temporarily override config/globals for test
	atomic.StoreInt64(&currentWorkerCount, 0)
	atomic.StoreInt64(&minWorkerCount, 2) // Must be > 1 based on the retirement guard
	logger = logger_i.NewLogger("TestWorkerPool")
	jobSvc := &job.Service{
		JobChannel: make(chan jobModel.Job),
	}
	InitServices(jobSvc, &MockRagService{})

	wg := &sync.WaitGroup{}
	stopChan := make(chan bool)
	workerWaitGroup = wg
	stopWorkerChannel = stopChan

	// Spawn 1 worker manually
	createWorker()
	time.Sleep(config.IdleWorkerTimeout)

	time.Sleep(100 * time.Millisecond)
	count := atomic.LoadInt64(&currentWorkerCount)
	if count != 0 {
		t.Errorf("Assertion Failed: Worker should have timed out and retired, but count is %d", count)
	}
}
