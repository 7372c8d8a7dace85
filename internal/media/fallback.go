package media

import (
	"context"

	"github.com/akolanti/StudyRAG/internal/metrics"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

type fallbackService struct {
	primary   Provider
	secondary Provider
	logger    *logger_i.Logger
}

// NewService arranges two providers into a primary/secondary chain. secondary
// may be nil, in which case primary failures surface directly.
func NewService(primary Provider, secondary Provider) Service {
	return &fallbackService{
		primary:   primary,
		secondary: secondary,
		logger:    logger_i.NewLogger("Media Service :"),
	}
}

// failover runs op on the primary and, if that fails, once on the secondary.
// The primary's error is logged and counted, never returned, as long as a
// secondary exists to try.
func failover[T any](ctx context.Context, s *fallbackService, operation string, op func(Provider) (T, error)) (T, string, error) {
	out, err := op(s.primary)
	if err == nil {
		return out, s.primary.Name(), nil
	}

	if s.secondary == nil {
		return out, s.primary.Name(), err
	}

	s.logger.Warn("Primary media provider failed, trying secondary",
		"operation", operation, "primary", s.primary.Name(), "error", err)
	metrics.CountProviderFallback(operation)

	out, err = op(s.secondary)
	return out, s.secondary.Name(), err
}

func (s *fallbackService) Transcribe(ctx context.Context, path string) (string, error) {
	text, _, err := failover(ctx, s, "transcribe", func(p Provider) (string, error) {
		return p.Transcribe(ctx, path)
	})
	return text, err
}

func (s *fallbackService) DescribeImage(ctx context.Context, path string) (string, error) {
	text, _, err := failover(ctx, s, "describe_image", func(p Provider) (string, error) {
		return p.DescribeImage(ctx, path)
	})
	return text, err
}

func (s *fallbackService) GenerateImage(ctx context.Context, prompt string) (ImageResult, string, error) {
	return failover(ctx, s, "generate_image", func(p Provider) (ImageResult, error) {
		return p.GenerateImage(ctx, prompt)
	})
}

func (s *fallbackService) Synthesize(ctx context.Context, text string) (AudioResult, string, error) {
	return failover(ctx, s, "synthesize", func(p Provider) (AudioResult, error) {
		return p.Synthesize(ctx, text)
	})
}
