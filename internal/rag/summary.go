package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

var summaryTypeInstructions = map[string]string{
	"brief":    "Provide a concise summary in 3-5 bullet points.",
	"detailed": "Provide a comprehensive, detailed summary covering all key concepts and details.",
}

// Summarize works off either an explicit context block the caller supplies or
// the session index filtered down to one source. Both paths clamp what the
// model sees to the same byte limit.
func (s *service) Summarize(ctx context.Context, req studyModel.SummaryRequest) (string, error) {
	summaryType := strings.ToLower(req.SummaryType)
	instruction, ok := summaryTypeInstructions[summaryType]
	if !ok {
		summaryType = "detailed"
		instruction = summaryTypeInstructions[summaryType]
	}

	text := req.Context
	sourceLabel := "pasted content"

	if text == "" {
		query := "main topics key concepts overview"
		if req.SourceFilter != "" {
			sourceLabel = req.SourceFilter
		} else {
			sourceLabel = "all documents"
		}

		assembled, err := s.assemble(ctx, req.SessionId, query, config.SummaryRetrievalK, req.SourceFilter)
		if err != nil {
			return "", err
		}
		if assembled.Empty() {
			return noInfoSummaryResponse, nil
		}
		text = assembled.Text
	}

	text = clampContext(text, config.SummaryContextLimit)
	request := fmt.Sprintf("Provide a %s summary of the material.", summaryType)
	prompt := fmt.Sprintf(summaryPrompt, sourceLabel, text, request, instruction)

	out, err := s.generate(ctx, "", prompt, config.DefaultTemperature)
	if err != nil {
		s.logger.Error("Summary generation failed", "sessionId", req.SessionId, "error", err)
		return "", err
	}
	return out, nil
}
