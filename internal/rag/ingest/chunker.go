package ingest

import (
	"strings"

	"github.com/akolanti/StudyRAG/internal/config"
)

// separators ordered from "best" to "worst" for semantic meaning
var separators = []string{"\n\n", "\n", ". ", " "}

// SplitText cuts raw text into overlapping fragments. Identical input always
// produces identical fragments, each at most ChunkSize long. Whitespace-only
// input yields nothing - empty documents are never indexed.
func SplitText(text string) []string {
	return splitWithLimits(text, config.ChunkSize, config.ChunkOverlap)
}

func splitWithLimits(text string, limit int, overlap int) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if len(trimmed) <= limit {
		return []string{trimmed}
	}

	var chunks []string
	start := 0
	for start < len(trimmed) {
		end := start + limit
		if end >= len(trimmed) {
			chunks = append(chunks, trimmed[start:])
			break
		}

		// prefer ending the chunk at a semantic boundary inside the window,
		// but never one so early that the overlap step would stall
		cut := -1
		for _, sep := range separators {
			if idx := strings.LastIndex(trimmed[start:end], sep); idx > overlap {
				cut = start + idx + len(sep)
				break
			}
		}
		if cut == -1 {
			cut = end //hard cut (rare)
		}

		chunks = append(chunks, trimmed[start:cut])

		// the next chunk re-reads the tail of this one to preserve context
		// across the boundary
		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks
}
