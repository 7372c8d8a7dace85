package rag

import (
	"encoding/json"
	"strings"

	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
)

// providers are told to return raw JSON with no formatting markers, but they
// are not 100% compliant - strip fences before every decode
func stripFormatting(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// decodeStructured is the single structured-extraction step. A miss comes
// back as a ParseError the calling workflow maps to its degraded shape.
func decodeStructured[T any](workflow string, raw string) (T, error) {
	var out T
	cleaned := stripFormatting(raw)
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return out, &ragErrors.ParseError{Workflow: workflow, Raw: cleaned, Err: err}
	}
	return out, nil
}
