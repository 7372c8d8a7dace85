package rag

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

// GenerateSamplePaper builds a fresh exam from the session's material in the
// shape of a previous-year paper. Pattern extraction is the only fatal step:
// without a parsed pattern there is nothing to generate against. Individual
// sections that fail are skipped so one bad section cannot sink the paper.
func (s *service) GenerateSamplePaper(ctx context.Context, sessionId string, pyqText string) (studyModel.PaperResult, error) {
	if strings.TrimSpace(pyqText) == "" {
		return studyModel.PaperResult{}, ragErrors.NewInputError("pyq text is required")
	}

	pattern, err := s.extractPattern(ctx, pyqText)
	if err != nil {
		return studyModel.PaperResult{}, err
	}

	result := studyModel.PaperResult{
		Paper:           []studyModel.GeneratedSection{},
		OriginalPattern: pattern,
	}

	for _, section := range pattern.Sections {
		generated, err := s.generateSection(ctx, sessionId, section)
		if err != nil {
			s.logger.Warn("Skipping paper section", "section", section.Name, "error", err)
			continue
		}
		result.Paper = append(result.Paper, generated)
	}

	return result, nil
}

func (s *service) extractPattern(ctx context.Context, pyqText string) (studyModel.PaperPattern, error) {
	raw, err := s.generate(ctx, "", fmt.Sprintf(patternPrompt, clampContext(pyqText, config.PaperContextLimit)), config.DefaultTemperature)
	if err != nil {
		s.logger.Error("Pattern extraction failed", "error", err)
		return studyModel.PaperPattern{}, err
	}

	pattern, err := decodeStructured[studyModel.PaperPattern]("paper_pattern", raw)
	if err != nil {
		return studyModel.PaperPattern{}, err
	}
	if len(pattern.Sections) == 0 {
		return studyModel.PaperPattern{}, &ragErrors.ParseError{Workflow: "paper_pattern", Raw: raw, Err: fmt.Errorf("no sections extracted")}
	}
	return pattern, nil
}

func (s *service) generateSection(ctx context.Context, sessionId string, section studyModel.PaperSection) (studyModel.GeneratedSection, error) {
	query := section.Name
	if section.Description != "" {
		query = query + " " + section.Description
	}

	assembled, err := s.assemble(ctx, sessionId, query, config.SummaryRetrievalK, "")
	if err != nil {
		return studyModel.GeneratedSection{}, err
	}
	if assembled.Empty() {
		return studyModel.GeneratedSection{}, ragErrors.ErrNoContent
	}

	contextText := clampContext(assembled.Text, config.PaperContextLimit)
	prompt := fmt.Sprintf(paperSectionPrompt, contextText,
		section.Name, section.Type, section.Count, section.MarksPerQuestion, section.Description, section.Count)

	raw, err := s.generate(ctx, "", prompt, config.DefaultTemperature)
	if err != nil {
		return studyModel.GeneratedSection{}, err
	}

	questions, err := decodeStructured[[]studyModel.PaperQuestion]("paper_section", raw)
	if err != nil {
		return studyModel.GeneratedSection{}, err
	}

	return studyModel.GeneratedSection{
		Section:   section.Name,
		Marks:     section.Count * section.MarksPerQuestion,
		Questions: questions,
	}, nil
}
