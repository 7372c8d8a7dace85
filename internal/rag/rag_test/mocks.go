package rag_test

import (
	"context"

	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/rag/ingest"
)

// MockIndex implements sessionIndex.Index
type MockIndex struct {
	// Control fields to simulate different behaviors
	OnAdd           func(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error)
	OnSearch        func(ctx context.Context, sessionId string, queryVector []float32, k int, sourceFilter string) ([]commonModels.Match, error)
	OnDeleteSession func(ctx context.Context, sessionId string) (int, error)
	OnListSources   func(ctx context.Context, sessionId string) ([]string, error)
}

func (m *MockIndex) Add(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error) {
	if m.OnAdd != nil {
		return m.OnAdd(ctx, sessionId, fragments, vectors)
	}
	return len(fragments), nil
}

func (m *MockIndex) Search(ctx context.Context, sessionId string, queryVector []float32, k int, sourceFilter string) ([]commonModels.Match, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, sessionId, queryVector, k, sourceFilter)
	}
	return []commonModels.Match{
		{Score: 0.9, Fragment: commonModels.Fragment{Text: "default context", Doc: commonModels.Document{Name: "notes.pdf"}}},
	}, nil
}

func (m *MockIndex) DeleteSession(ctx context.Context, sessionId string) (int, error) {
	if m.OnDeleteSession != nil {
		return m.OnDeleteSession(ctx, sessionId)
	}
	return 0, nil
}

func (m *MockIndex) ListSources(ctx context.Context, sessionId string) ([]string, error) {
	if m.OnListSources != nil {
		return m.OnListSources(ctx, sessionId)
	}
	return nil, nil
}

type MockEmbedder struct {
	OnGetEmbedding   func(ctx context.Context, text string) ([]float32, error)
	OnBatchEmbedding func(ctx context.Context, chunks []string) ([][]float32, error)
}

func (m *MockEmbedder) BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error) {
	if m.OnBatchEmbedding != nil {
		return m.OnBatchEmbedding(ctx, chunks)
	}
	// Return dummy vectors matching chunk size
	return make([][]float32, len(chunks)), nil
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, query)
	}
	return []float32{0.1}, nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	Calls      int
	OnComplete func(ctx context.Context, systemInstructions string, userContent string, temperature float32) (string, error)
}

func (m *MockLLM) Complete(ctx context.Context, systemInstructions string, userContent string, temperature float32) (string, error) {
	m.Calls++
	if m.OnComplete != nil {
		return m.OnComplete(ctx, systemInstructions, userContent, temperature)
	}
	return "mocked llm response", nil
}

// MockExtractor implements ingest.Extractor
type MockExtractor struct {
	OnExtract func(ctx context.Context, path string, docType commonModels.DocType) ([]ingest.Page, int, error)
}

func (m *MockExtractor) Extract(ctx context.Context, path string, docType commonModels.DocType) ([]ingest.Page, int, error) {
	if m.OnExtract != nil {
		return m.OnExtract(ctx, path, docType)
	}
	return []ingest.Page{{Number: 1, Content: "extracted content"}}, 1, nil
}
