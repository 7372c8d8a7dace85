package media

import (
	"context"
)

// Provider is the full media surface one vendor exposes. A provider that
// cannot serve an operation returns a ProviderError so the fallback chain can
// move on.
type Provider interface {
	Name() string
	Transcribe(ctx context.Context, path string) (string, error)
	DescribeImage(ctx context.Context, path string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (ImageResult, error)
	Synthesize(ctx context.Context, text string) (AudioResult, error)
}

type ImageResult struct {
	Data     []byte
	MimeType string
}

type AudioResult struct {
	Data     []byte
	MimeType string
}

// Service is what the ingestion pipeline and the media endpoints consume. It
// hides the primary/secondary provider arrangement.
type Service interface {
	Transcribe(ctx context.Context, path string) (string, error)
	DescribeImage(ctx context.Context, path string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (ImageResult, string, error)
	Synthesize(ctx context.Context, text string) (AudioResult, string, error)
}
