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

// maxQuestionsFor bounds how many questions the retrieved material can honestly
// support: one question per 40 words, floored at 5 and capped at 50.
func maxQuestionsFor(contextText string) int {
	n := wordCount(contextText) / config.QuizWordsPerQuestion
	if n > config.QuizMaxQuestions {
		n = config.QuizMaxQuestions
	}
	if n < config.QuizMinQuestions {
		n = config.QuizMinQuestions
	}
	return n
}

// GenerateQuiz always returns a well formed QuizResult. Degraded outcomes
// (no documents, model output that does not parse) come back in the Warning
// and Error fields rather than as transport failures.
func (s *service) GenerateQuiz(ctx context.Context, req studyModel.QuizRequest) (studyModel.QuizResult, error) {
	if req.NumQuestions < config.QuizMinQuestions || req.NumQuestions > config.QuizMaxQuestions {
		return studyModel.QuizResult{}, ragErrors.NewInputError("num_questions must be between %d and %d",
			config.QuizMinQuestions, config.QuizMaxQuestions)
	}

	difficulty := strings.ToLower(req.Difficulty)
	diffInstruction, ok := difficultyInstructions[difficulty]
	if !ok {
		difficulty = "medium"
		diffInstruction = difficultyInstructions[difficulty]
	}

	topic := req.Topic
	query := topic
	if strings.TrimSpace(query) == "" {
		topic = "general coverage of the material"
		query = "main topics key concepts important facts"
	}

	assembled, err := s.assemble(ctx, req.SessionId, query, config.QuizRetrievalK, "")
	if err != nil {
		return studyModel.QuizResult{}, err
	}
	if assembled.Empty() {
		return studyModel.QuizResult{
			Questions:  []studyModel.QuizQuestion{},
			Count:      0,
			Difficulty: difficulty,
			Warning:    noDocumentsQuizWarning,
		}, nil
	}

	numQuestions := req.NumQuestions
	limit := maxQuestionsFor(assembled.Text)
	warning := ""
	if numQuestions > limit {
		warning = fmt.Sprintf("Only enough content for %d questions (requested %d).", limit, numQuestions)
		numQuestions = limit
	}

	contextText := clampContext(assembled.Text, config.QuizContextLimit)
	prompt := fmt.Sprintf(quizPrompt, contextText, numQuestions, topic, difficulty, diffInstruction)

	raw, err := s.generate(ctx, "", prompt, config.DefaultTemperature)
	if err != nil {
		s.logger.Error("Quiz generation failed", "sessionId", req.SessionId, "error", err)
		return studyModel.QuizResult{}, err
	}

	questions, err := decodeStructured[[]studyModel.QuizQuestion]("quiz", raw)
	if err != nil {
		var parseErr *ragErrors.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("Quiz output did not parse", "sessionId", req.SessionId, "error", err)
			return studyModel.QuizResult{
				Questions:  []studyModel.QuizQuestion{},
				Count:      0,
				Difficulty: difficulty,
				Error:      quizParseFailure,
			}, nil
		}
		return studyModel.QuizResult{}, err
	}

	return studyModel.QuizResult{
		Questions:  questions,
		Count:      len(questions),
		Difficulty: difficulty,
		Requested:  req.NumQuestions,
		Warning:    warning,
	}, nil
}
