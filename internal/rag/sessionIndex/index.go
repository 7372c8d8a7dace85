package sessionIndex

import (
	"context"

	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
)

// Index owns all fragment and vector storage. Workflows never write to it,
// they only read through the context assembler. Every method requires a
// session id - there is no way to query across sessions.
type Index interface {
	// Add tags every fragment with the session id, stores text and vector
	// together, and returns the count actually applied.
	Add(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error)

	// Search ranks the session's fragments by cosine similarity against the
	// query vector and returns the top k, score-descending. Equal scores
	// resolve oldest-insertion-first. sourceFilter narrows candidates to a
	// single source when non-empty.
	Search(ctx context.Context, sessionId string, queryVector []float32, k int, sourceFilter string) ([]commonModels.Match, error)

	// DeleteSession removes every fragment tagged with the session and
	// returns how many went away. Idempotent - an empty or unknown session
	// deletes 0 without error.
	DeleteSession(ctx context.Context, sessionId string) (int, error)

	// ListSources returns the distinct non-empty source labels in a session.
	ListSources(ctx context.Context, sessionId string) ([]string, error)
}
