package geminiMedia

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/media"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
	"google.golang.org/genai"
)

// MockFileService drives the processing states the poll loop sees
type MockFileService struct {
	OnUpload func(ctx context.Context, path string, mimeType string) (*genai.File, error)
	OnGet    func(ctx context.Context, name string) (*genai.File, error)
	GetCalls int
}

func (m *MockFileService) Upload(ctx context.Context, path string, mimeType string) (*genai.File, error) {
	if m.OnUpload != nil {
		return m.OnUpload(ctx, path, mimeType)
	}
	return &genai.File{Name: "files/test", State: genai.FileStateProcessing}, nil
}

func (m *MockFileService) Get(ctx context.Context, name string) (*genai.File, error) {
	m.GetCalls++
	if m.OnGet != nil {
		return m.OnGet(ctx, name)
	}
	return &genai.File{Name: name, State: genai.FileStateProcessing}, nil
}

type stubSecondary struct{}

func (s *stubSecondary) Name() string { return "openai" }

func (s *stubSecondary) Transcribe(ctx context.Context, path string) (string, error) {
	return "transcript from secondary", nil
}

func (s *stubSecondary) DescribeImage(ctx context.Context, path string) (string, error) {
	return "", errors.New("unsupported")
}

func (s *stubSecondary) GenerateImage(ctx context.Context, prompt string) (media.ImageResult, error) {
	return media.ImageResult{}, errors.New("unsupported")
}

func (s *stubSecondary) Synthesize(ctx context.Context, text string) (media.AudioResult, error) {
	return media.AudioResult{}, errors.New("unsupported")
}

func pollingProvider(files fileService) *geminiProvider {
	logger = logger_i.NewLogger("TestGeminiMedia")
	return &geminiProvider{
		files:        files,
		pollInterval: time.Millisecond,
		pollCeiling:  10 * time.Millisecond,
	}
}

func TestTranscribe_PollCeilingExpires(t *testing.T) {
	files := &MockFileService{} //never leaves processing
	p := pollingProvider(files)

	_, err := p.Transcribe(context.Background(), "lecture.mp3")

	var provErr *ragErrors.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected a provider error after the ceiling, got %v", err)
	}
	if !strings.Contains(err.Error(), "still processing") {
		t.Errorf("error should name the stuck file: %v", err)
	}
	if files.GetCalls == 0 {
		t.Error("the poll loop never checked the file state")
	}
}

func TestTranscribe_FailedStateStopsPolling(t *testing.T) {
	files := &MockFileService{
		OnGet: func(ctx context.Context, name string) (*genai.File, error) {
			return &genai.File{Name: name, State: genai.FileStateFailed}, nil
		},
	}
	p := pollingProvider(files)

	_, err := p.Transcribe(context.Background(), "lecture.mp3")
	if err == nil || !strings.Contains(err.Error(), "failed processing") {
		t.Fatalf("expected a failed-processing error, got %v", err)
	}
	if files.GetCalls != 1 {
		t.Errorf("polling must stop on first FAILED state, got %d checks", files.GetCalls)
	}
}

func TestTranscribe_CancelledContextStopsPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := pollingProvider(&MockFileService{})
	_, err := p.Transcribe(ctx, "lecture.mp3")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTranscribe_StuckFileFallsBack(t *testing.T) {
	p := pollingProvider(&MockFileService{})
	svc := media.NewService(p, &stubSecondary{})

	text, err := svc.Transcribe(context.Background(), "lecture.mp3")
	if err != nil {
		t.Fatalf("Transcribe failed despite a healthy secondary: %v", err)
	}
	if text != "transcript from secondary" {
		t.Errorf("got %q, want the secondary to take over after the ceiling", text)
	}
}
