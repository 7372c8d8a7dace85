package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

func (s *service) Chat(ctx context.Context, sessionId string, query string, history []string) (studyModel.ChatResult, error) {
	if strings.TrimSpace(query) == "" {
		return studyModel.ChatResult{}, ragErrors.NewInputError("query is required")
	}

	assembled, err := s.assemble(ctx, sessionId, query, config.ChatRetrievalK, "")
	if err != nil {
		return studyModel.ChatResult{}, err
	}

	//nothing indexed for this session matches - answer without burning a model call
	if assembled.Empty() {
		return studyModel.ChatResult{Response: noInfoChatResponse, Sources: []string{}}, nil
	}

	system := fmt.Sprintf(chatSystemPrompt, assembled.Text)
	userContent := query
	if len(history) > 0 {
		userContent = fmt.Sprintf("Previous conversation:\n%s\n\nQuestion: %s", strings.Join(history, "\n"), query)
	}

	answer, err := s.generate(ctx, system, userContent, config.DefaultTemperature)
	if err != nil {
		s.logger.Error("Chat generation failed", "sessionId", sessionId, "error", err)
		return studyModel.ChatResult{}, err
	}

	return studyModel.ChatResult{
		Response: answer,
		Sources:  assembled.Sources,
	}, nil
}
