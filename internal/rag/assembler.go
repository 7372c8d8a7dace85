package rag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
)

// assembledContext is the bounded context block a workflow feeds the model,
// plus the deduplicated citations it owes the user.
type assembledContext struct {
	Text      string
	Sources   []string
	Fragments int
}

func (a assembledContext) Empty() bool {
	return a.Fragments == 0
}

// upstream extraction embeds "[Page N of M]" markers into pdf text - the
// citation scanner picks them back out
var pageMarkerRegex = regexp.MustCompile(`\[Page (\d+) of (\d+)\]`)

// assemble is the one retrieval path every workflow shares: embed the query,
// search the session, concatenate ranked fragments and extract citations.
func (s *service) assemble(ctx context.Context, sessionId string, query string, k int, sourceFilter string) (assembledContext, error) {
	if sessionId == "" {
		return assembledContext{}, ragErrors.NewInputError("session id is required")
	}

	vector, err := s.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return assembledContext{}, &ragErrors.ProviderError{Provider: "embedding", Err: err}
	}

	matches, err := s.index.Search(ctx, sessionId, vector, k, sourceFilter)
	if err != nil {
		return assembledContext{}, err
	}

	return formatMatches(matches), nil
}

func formatMatches(matches []commonModels.Match) assembledContext {
	var formatted []string
	var sources []string
	seen := make(map[string]bool)

	for _, m := range matches {
		content := m.Fragment.Text
		source := m.Fragment.Doc.Name
		if source == "" {
			source = "Unknown"
		}

		citation := source
		if pm := pageMarkerRegex.FindStringSubmatch(content); pm != nil {
			citation = fmt.Sprintf("%s (Page %s/%s)", source, pm[1], pm[2])
		}
		if !seen[citation] {
			seen[citation] = true
			sources = append(sources, citation)
		}

		formatted = append(formatted, content)
	}

	return assembledContext{
		Text:      strings.Join(formatted, "\n\n"),
		Sources:   sources,
		Fragments: len(matches),
	}
}

func clampContext(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
