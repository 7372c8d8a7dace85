package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

// Teach runs the tutor workflow: shallower retrieval than chat, a narrative
// register and a slightly warmer temperature. The output is phrased to be
// spoken aloud, the transport layer may pipe it straight into synthesis.
func (s *service) Teach(ctx context.Context, sessionId string, query string, language string) (studyModel.ChatResult, error) {
	if strings.TrimSpace(query) == "" {
		return studyModel.ChatResult{}, ragErrors.NewInputError("query is required")
	}
	if language == "" {
		language = "English"
	}

	assembled, err := s.assemble(ctx, sessionId, query, config.TeachingRetrievalK, "")
	if err != nil {
		return studyModel.ChatResult{}, err
	}

	if assembled.Empty() {
		return studyModel.ChatResult{Response: noInfoTeachingResponse, Sources: []string{}}, nil
	}

	system := fmt.Sprintf(teachingSystemPrompt, assembled.Text, language, language)

	answer, err := s.generate(ctx, system, query, config.TeachingTemperature)
	if err != nil {
		s.logger.Error("Teaching generation failed", "sessionId", sessionId, "error", err)
		return studyModel.ChatResult{}, err
	}

	return studyModel.ChatResult{
		Response: answer,
		Sources:  assembled.Sources,
	}, nil
}
