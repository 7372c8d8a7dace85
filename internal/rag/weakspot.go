package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

// AnalyzeWeakSpots grades an answered quiz. Scoring is pure bookkeeping; the
// model is only consulted for the recommendation, and only when there is
// something to recommend. It never returns an error: a recommendation the
// model cannot produce degrades to a plain topic listing.
func (s *service) AnalyzeWeakSpots(ctx context.Context, questions []studyModel.QuizQuestion, answers map[string]string) studyModel.QuizAnalysis {
	analysis := studyModel.QuizAnalysis{
		Total:     len(questions),
		WeakSpots: []studyModel.WeakSpot{},
	}

	topicSeen := make(map[string]bool)
	for i, q := range questions {
		given := answers[fmt.Sprintf("%d", i)]
		if given == q.Answer {
			analysis.Score++
			continue
		}
		analysis.WeakSpots = append(analysis.WeakSpots, studyModel.WeakSpot{
			Question:      q.Question,
			Topic:         q.Topic,
			CorrectAnswer: q.Answer,
			YourAnswer:    given,
		})
		if q.Topic != "" && !topicSeen[q.Topic] {
			topicSeen[q.Topic] = true
			analysis.TopicsToReview = append(analysis.TopicsToReview, q.Topic)
		}
	}

	if len(analysis.WeakSpots) == 0 {
		analysis.Recommendation = perfectScoreRecommendation
		return analysis
	}

	topics := strings.Join(analysis.TopicsToReview, ", ")
	rec, err := s.generate(ctx, "", fmt.Sprintf(recommendationPrompt, topics), config.DefaultTemperature)
	if err != nil {
		s.logger.Warn("Recommendation generation failed, using topic listing", "error", err)
		rec = "Focus on reviewing: " + topics
	}
	analysis.Recommendation = rec
	return analysis
}
