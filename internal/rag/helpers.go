package rag

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/metrics"
)

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: "Internal Server Error",
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

// generate is the shared timed wrapper around the llm provider. Every workflow
// funnels through it so llm_generation latency captures all of them.
func (s *service) generate(ctx context.Context, systemInstructions string, userContent string, temperature float32) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("llm_generation", time.Since(start)) }()

	out, err := s.llm.Complete(ctx, systemInstructions, userContent, temperature)
	if err != nil {
		if errors.As(err, new(*ragErrors.ProviderError)) {
			return "", err
		}
		return "", &ragErrors.ProviderError{Provider: "llm", Err: err}
	}
	return out, nil
}
