package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

const defaultSlideCount = 5

// GenerateSlideOutline drafts a presentation skeleton on a topic from the
// session's material. Output that fails to parse degrades to an empty outline.
func (s *service) GenerateSlideOutline(ctx context.Context, sessionId string, topic string, numSlides int) ([]studyModel.Slide, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ragErrors.NewInputError("topic is required")
	}
	if numSlides <= 0 {
		numSlides = defaultSlideCount
	}

	assembled, err := s.assemble(ctx, sessionId, topic, config.QuizRetrievalK, "")
	if err != nil {
		return nil, err
	}
	if assembled.Empty() {
		return nil, ragErrors.ErrNoContent
	}

	contextText := clampContext(assembled.Text, config.SummaryContextLimit)
	prompt := fmt.Sprintf(slidesPrompt, numSlides, topic, contextText, numSlides)

	raw, err := s.generate(ctx, "", prompt, config.DefaultTemperature)
	if err != nil {
		s.logger.Error("Slide generation failed", "sessionId", sessionId, "error", err)
		return nil, err
	}

	slides, err := decodeStructured[[]studyModel.Slide]("slides", raw)
	if err != nil {
		var parseErr *ragErrors.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("Slide output did not parse", "sessionId", sessionId, "error", err)
			return []studyModel.Slide{}, nil
		}
		return nil, err
	}
	return slides, nil
}
