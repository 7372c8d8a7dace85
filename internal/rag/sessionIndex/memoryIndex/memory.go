package memoryIndex

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
)

// Store is the in-process stand-in for the qdrant index - same contract,
// brute-force cosine scan. It backs tests and the degraded mode where the
// vector store is not reachable at startup.
type Store struct {
	mu        sync.RWMutex
	seq       int64
	fragments []entry
}

type entry struct {
	fragment commonModels.Fragment
	vector   []float32
}

func InitMemoryIndex() *Store {
	return &Store{}
}

func (s *Store) Add(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error) {
	if len(fragments) != len(vectors) {
		return 0, fmt.Errorf("mismatch: got %d fragments but %d vectors", len(fragments), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range fragments {
		f.Doc.SessionId = sessionId
		s.seq++
		f.Seq = s.seq
		s.fragments = append(s.fragments, entry{fragment: f, vector: vectors[i]})
	}
	return len(fragments), nil
}

func (s *Store) Search(ctx context.Context, sessionId string, queryVector []float32, k int, sourceFilter string) ([]commonModels.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []commonModels.Match
	for _, e := range s.fragments {
		if e.fragment.Doc.SessionId != sessionId {
			continue
		}
		if sourceFilter != "" && sourceFilter != "all" && e.fragment.Doc.Name != sourceFilter {
			continue
		}
		matches = append(matches, commonModels.Match{
			Fragment: e.fragment,
			Score:    cosine(queryVector, e.vector),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Fragment.Seq < matches[j].Fragment.Seq
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}

func (s *Store) DeleteSession(ctx context.Context, sessionId string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.fragments[:0]
	deleted := 0
	for _, e := range s.fragments {
		if e.fragment.Doc.SessionId == sessionId {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.fragments = kept
	return deleted, nil
}

func (s *Store) ListSources(ctx context.Context, sessionId string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var sources []string
	for _, e := range s.fragments {
		if e.fragment.Doc.SessionId != sessionId {
			continue
		}
		name := e.fragment.Doc.Name
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		sources = append(sources, name)
	}
	return sources, nil
}

func cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
