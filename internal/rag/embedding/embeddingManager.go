package embedding

import "context"

// Embedder must be deterministic for identical input under a fixed model
// version - re-ingestion produces new fragments, never updated vectors.
type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
}
