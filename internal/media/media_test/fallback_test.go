package media_test

import (
	"context"
	"errors"
	"testing"

	"github.com/akolanti/StudyRAG/internal/media"
)

// MockProvider implements media.Provider
type MockProvider struct {
	ProviderName  string
	OnTranscribe  func(ctx context.Context, path string) (string, error)
	OnDescribe    func(ctx context.Context, path string) (string, error)
	OnGenImage    func(ctx context.Context, prompt string) (media.ImageResult, error)
	OnSynthesize  func(ctx context.Context, text string) (media.AudioResult, error)
	TranscribeHit int
}

func (m *MockProvider) Name() string {
	return m.ProviderName
}

func (m *MockProvider) Transcribe(ctx context.Context, path string) (string, error) {
	m.TranscribeHit++
	if m.OnTranscribe != nil {
		return m.OnTranscribe(ctx, path)
	}
	return "transcript from " + m.ProviderName, nil
}

func (m *MockProvider) DescribeImage(ctx context.Context, path string) (string, error) {
	if m.OnDescribe != nil {
		return m.OnDescribe(ctx, path)
	}
	return "description from " + m.ProviderName, nil
}

func (m *MockProvider) GenerateImage(ctx context.Context, prompt string) (media.ImageResult, error) {
	if m.OnGenImage != nil {
		return m.OnGenImage(ctx, prompt)
	}
	return media.ImageResult{Data: []byte(m.ProviderName), MimeType: "image/png"}, nil
}

func (m *MockProvider) Synthesize(ctx context.Context, text string) (media.AudioResult, error) {
	if m.OnSynthesize != nil {
		return m.OnSynthesize(ctx, text)
	}
	return media.AudioResult{Data: []byte(m.ProviderName), MimeType: "audio/wav"}, nil
}

func TestFallback_PrimaryServes(t *testing.T) {
	primary := &MockProvider{ProviderName: "gemini"}
	secondary := &MockProvider{ProviderName: "openai"}
	svc := media.NewService(primary, secondary)

	text, err := svc.Transcribe(context.Background(), "lecture.mp3")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if text != "transcript from gemini" {
		t.Errorf("got %q, want the primary's result", text)
	}
	if secondary.TranscribeHit != 0 {
		t.Error("secondary must not be touched when the primary succeeds")
	}
}

func TestFallback_SecondaryTakesOver(t *testing.T) {
	primary := &MockProvider{
		ProviderName: "gemini",
		OnTranscribe: func(ctx context.Context, path string) (string, error) {
			return "", errors.New("quota exhausted")
		},
	}
	secondary := &MockProvider{ProviderName: "openai"}
	svc := media.NewService(primary, secondary)

	text, err := svc.Transcribe(context.Background(), "lecture.mp3")
	if err != nil {
		t.Fatalf("Transcribe failed despite a healthy secondary: %v", err)
	}
	if text != "transcript from openai" {
		t.Errorf("got %q, want the secondary's result", text)
	}
}

func TestFallback_ReportsServingProvider(t *testing.T) {
	primary := &MockProvider{
		ProviderName: "gemini",
		OnGenImage: func(ctx context.Context, prompt string) (media.ImageResult, error) {
			return media.ImageResult{}, errors.New("blocked")
		},
	}
	secondary := &MockProvider{ProviderName: "openai"}
	svc := media.NewService(primary, secondary)

	result, servedBy, err := svc.GenerateImage(context.Background(), "a cell diagram")
	if err != nil {
		t.Fatalf("GenerateImage failed: %v", err)
	}
	if servedBy != "openai" {
		t.Errorf("servedBy got %q, want openai", servedBy)
	}
	if string(result.Data) != "openai" {
		t.Errorf("result did not come from the secondary: %q", result.Data)
	}
}

func TestFallback_BothFail(t *testing.T) {
	boom := errors.New("down")
	primary := &MockProvider{
		ProviderName: "gemini",
		OnSynthesize: func(ctx context.Context, text string) (media.AudioResult, error) {
			return media.AudioResult{}, boom
		},
	}
	secondary := &MockProvider{
		ProviderName: "openai",
		OnSynthesize: func(ctx context.Context, text string) (media.AudioResult, error) {
			return media.AudioResult{}, errors.New("also down")
		},
	}
	svc := media.NewService(primary, secondary)

	_, servedBy, err := svc.Synthesize(context.Background(), "read this aloud")
	if err == nil {
		t.Fatal("expected an error when both providers fail")
	}
	if servedBy != "openai" {
		t.Errorf("the last provider tried was %q, want openai", servedBy)
	}
}

func TestFallback_NoSecondary(t *testing.T) {
	primaryErr := errors.New("primary only failure")
	primary := &MockProvider{
		ProviderName: "gemini",
		OnTranscribe: func(ctx context.Context, path string) (string, error) {
			return "", primaryErr
		},
	}
	svc := media.NewService(primary, nil)

	_, err := svc.Transcribe(context.Background(), "lecture.mp3")
	if !errors.Is(err, primaryErr) {
		t.Errorf("got %v, want the primary's own error surfaced", err)
	}
}
