package rag_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
	"github.com/akolanti/StudyRAG/internal/rag"
	"github.com/akolanti/StudyRAG/internal/rag/ingest"
)

func newTestService(idx *MockIndex, llm *MockLLM, emb *MockEmbedder) rag.Service {
	return rag.NewService(idx, llm, emb, &MockExtractor{})
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestChat_Scenarios(t *testing.T) {
	tests := []struct {
		name             string
		setupMocks       func(idx *MockIndex, llm *MockLLM, emb *MockEmbedder)
		query            string
		expectedResponse string
		expectedSources  []string
		expectLLMCalls   int
		expectErr        bool
	}{
		{
			name: "Success_With_Citations",
			setupMocks: func(idx *MockIndex, llm *MockLLM, emb *MockEmbedder) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return []commonModels.Match{
						{Score: 0.9, Fragment: commonModels.Fragment{
							Text: "[Page 3 of 10]\nOsmosis is diffusion of water.",
							Doc:  commonModels.Document{Name: "bio.pdf"},
						}},
						{Score: 0.8, Fragment: commonModels.Fragment{
							Text: "Plain text without a marker.",
							Doc:  commonModels.Document{Name: "notes.txt"},
						}},
					}, nil
				}
				llm.OnComplete = func(ctx context.Context, sys string, user string, temp float32) (string, error) {
					return "Osmosis moves water across membranes.", nil
				}
			},
			query:            "what is osmosis",
			expectedResponse: "Osmosis moves water across membranes.",
			expectedSources:  []string{"bio.pdf (Page 3/10)", "notes.txt"},
			expectLLMCalls:   1,
		},
		{
			name: "Empty_Retrieval_Skips_Model",
			setupMocks: func(idx *MockIndex, llm *MockLLM, emb *MockEmbedder) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return nil, nil
				}
			},
			query:            "anything",
			expectedResponse: "I don't have any information about this topic in your uploaded documents. Please upload relevant study materials first.",
			expectedSources:  []string{},
			expectLLMCalls:   0,
		},
		{
			name: "Embedding_Failure",
			setupMocks: func(idx *MockIndex, llm *MockLLM, emb *MockEmbedder) {
				emb.OnGetEmbedding = func(ctx context.Context, text string) ([]float32, error) {
					return nil, errors.New("api limit")
				}
			},
			query:     "anything",
			expectErr: true,
		},
		{
			name:       "Blank_Query",
			setupMocks: func(idx *MockIndex, llm *MockLLM, emb *MockEmbedder) {},
			query:      "   ",
			expectErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := &MockIndex{}
			llm := &MockLLM{}
			emb := &MockEmbedder{}
			tt.setupMocks(idx, llm, emb)

			s := newTestService(idx, llm, emb)
			result, err := s.Chat(testCtx(), "session-1", tt.query, nil)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Chat failed: %v", err)
			}
			if result.Response != tt.expectedResponse {
				t.Errorf("Response got %q, want %q", result.Response, tt.expectedResponse)
			}
			if fmt.Sprint(result.Sources) != fmt.Sprint(tt.expectedSources) {
				t.Errorf("Sources got %v, want %v", result.Sources, tt.expectedSources)
			}
			if llm.Calls != tt.expectLLMCalls {
				t.Errorf("LLM calls got %d, want %d", llm.Calls, tt.expectLLMCalls)
			}
		})
	}
}

func TestTeach_UsesWarmerTemperature(t *testing.T) {
	idx := &MockIndex{}
	emb := &MockEmbedder{}
	var gotTemp float32
	llm := &MockLLM{
		OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
			gotTemp = temp
			if !strings.Contains(sys, "Spanish") {
				t.Errorf("expected target language in system prompt, got %q", sys)
			}
			return "explained", nil
		},
	}

	s := newTestService(idx, llm, emb)
	if _, err := s.Teach(testCtx(), "session-1", "explain osmosis", "Spanish"); err != nil {
		t.Fatalf("Teach failed: %v", err)
	}
	if gotTemp != config.TeachingTemperature {
		t.Errorf("temperature got %v, want %v", gotTemp, config.TeachingTemperature)
	}
}

func TestSummarize_Scenarios(t *testing.T) {
	t.Run("Explicit_Context_Skips_Retrieval", func(t *testing.T) {
		searched := false
		idx := &MockIndex{
			OnSearch: func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
				searched = true
				return nil, nil
			},
		}
		llm := &MockLLM{}
		s := newTestService(idx, llm, &MockEmbedder{})

		out, err := s.Summarize(testCtx(), studyModel.SummaryRequest{
			SessionId:   "session-1",
			SummaryType: "brief",
			Context:     "Pasted notes about mitochondria.",
		})
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if searched {
			t.Error("explicit context should not hit the index")
		}
		if out != "mocked llm response" {
			t.Errorf("Summary got %q", out)
		}
	})

	t.Run("Empty_Session_Returns_Canned_Text", func(t *testing.T) {
		idx := &MockIndex{
			OnSearch: func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
				return nil, nil
			},
		}
		llm := &MockLLM{}
		s := newTestService(idx, llm, &MockEmbedder{})

		out, err := s.Summarize(testCtx(), studyModel.SummaryRequest{SessionId: "session-1", SummaryType: "detailed"})
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if out != "I couldn't find information for that specific context. Please check if the document was uploaded correctly." {
			t.Errorf("Summary got %q", out)
		}
		if llm.Calls != 0 {
			t.Errorf("LLM calls got %d, want 0", llm.Calls)
		}
	})

	t.Run("Unknown_Type_Defaults_To_Detailed", func(t *testing.T) {
		var gotPrompt string
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				gotPrompt = user
				return "summary", nil
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		_, err := s.Summarize(testCtx(), studyModel.SummaryRequest{
			SessionId: "session-1",
			Context:   "Pasted notes.",
		})
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if !strings.Contains(gotPrompt, "Provide a detailed summary") {
			t.Errorf("empty summary type must normalize to detailed, prompt: %q", gotPrompt)
		}
		if !strings.Contains(gotPrompt, "comprehensive, detailed summary") {
			t.Errorf("detailed instruction missing from prompt: %q", gotPrompt)
		}
	})

	t.Run("Type_Is_Case_Insensitive", func(t *testing.T) {
		var gotPrompt string
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				gotPrompt = user
				return "summary", nil
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		_, err := s.Summarize(testCtx(), studyModel.SummaryRequest{
			SessionId:   "session-1",
			SummaryType: "Brief",
			Context:     "Pasted notes.",
		})
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if !strings.Contains(gotPrompt, "Provide a brief summary") {
			t.Errorf("mixed-case type must normalize, prompt: %q", gotPrompt)
		}
	})
}

func quizJSON(n int) string {
	questions := make([]string, n)
	for i := range questions {
		questions[i] = fmt.Sprintf(`{"question":"q%d","options":["a","b","c","d"],"answer":"a","topic":"t%d"}`, i, i)
	}
	return "[" + strings.Join(questions, ",") + "]"
}

func contextOfWords(n int) []commonModels.Match {
	return []commonModels.Match{
		{Score: 0.9, Fragment: commonModels.Fragment{
			Text: strings.Repeat("word ", n),
			Doc:  commonModels.Document{Name: "notes.pdf"},
		}},
	}
}

func TestGenerateQuiz_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(idx *MockIndex, llm *MockLLM)
		request       studyModel.QuizRequest
		expectedCount int
		wantWarning   string
		wantError     string
		expectErr     bool
	}{
		{
			name:       "Below_Minimum_Rejected",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {},
			request:    studyModel.QuizRequest{SessionId: "s", NumQuestions: 3},
			expectErr:  true,
		},
		{
			name:       "Above_Maximum_Rejected",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {},
			request:    studyModel.QuizRequest{SessionId: "s", NumQuestions: 51},
			expectErr:  true,
		},
		{
			name: "No_Documents",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return nil, nil
				}
			},
			request:       studyModel.QuizRequest{SessionId: "s", NumQuestions: 10},
			expectedCount: 0,
			wantWarning:   "No documents found in your session. Please upload study materials first.",
		},
		{
			name: "Thin_Material_Caps_Count",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return contextOfWords(100), nil //100 words supports only the minimum of 5
				}
				llm.OnComplete = func(ctx context.Context, sys string, user string, temp float32) (string, error) {
					if !strings.Contains(user, "exactly 5 multiple-choice questions") {
						t.Errorf("prompt not capped: %q", user)
					}
					return quizJSON(5), nil
				}
			},
			request:       studyModel.QuizRequest{SessionId: "s", NumQuestions: 30, Difficulty: "easy"},
			expectedCount: 5,
			wantWarning:   "Only enough content for 5 questions (requested 30).",
		},
		{
			name: "Unparseable_Output_Degrades",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return contextOfWords(2000), nil
				}
				llm.OnComplete = func(ctx context.Context, sys string, user string, temp float32) (string, error) {
					return "I refuse to answer in JSON", nil
				}
			},
			request:       studyModel.QuizRequest{SessionId: "s", NumQuestions: 10},
			expectedCount: 0,
			wantError:     "Failed to parse quiz. Please try again.",
		},
		{
			name: "Fenced_JSON_Still_Parses",
			setupMocks: func(idx *MockIndex, llm *MockLLM) {
				idx.OnSearch = func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
					return contextOfWords(2000), nil
				}
				llm.OnComplete = func(ctx context.Context, sys string, user string, temp float32) (string, error) {
					return "```json\n" + quizJSON(10) + "\n```", nil
				}
			},
			request:       studyModel.QuizRequest{SessionId: "s", NumQuestions: 10},
			expectedCount: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := &MockIndex{}
			llm := &MockLLM{}
			tt.setupMocks(idx, llm)

			s := newTestService(idx, llm, &MockEmbedder{})
			result, err := s.GenerateQuiz(testCtx(), tt.request)
			if tt.expectErr {
				var inputErr *ragErrors.InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("expected an input error, got %v", err)
				}
				if llm.Calls != 0 {
					t.Errorf("rejected request must not reach the model, got %d calls", llm.Calls)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateQuiz failed: %v", err)
			}

			if result.Count != tt.expectedCount {
				t.Errorf("Count got %d, want %d", result.Count, tt.expectedCount)
			}
			if len(result.Questions) != tt.expectedCount {
				t.Errorf("Questions got %d, want %d", len(result.Questions), tt.expectedCount)
			}
			if result.Questions == nil {
				t.Error("Questions must never be nil")
			}
			if tt.wantWarning != "" && result.Warning != tt.wantWarning {
				t.Errorf("Warning got %q, want %q", result.Warning, tt.wantWarning)
			}
			if tt.wantError != "" && result.Error != tt.wantError {
				t.Errorf("Error got %q, want %q", result.Error, tt.wantError)
			}
		})
	}
}

func TestAnalyzeWeakSpots(t *testing.T) {
	questions := []studyModel.QuizQuestion{
		{Question: "q0", Answer: "a", Topic: "photosynthesis"},
		{Question: "q1", Answer: "b", Topic: "osmosis"},
		{Question: "q2", Answer: "c", Topic: "osmosis"},
	}

	t.Run("Score_And_WeakSpots_Account_For_Every_Question", func(t *testing.T) {
		llm := &MockLLM{}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		analysis := s.AnalyzeWeakSpots(testCtx(), questions, map[string]string{"0": "a", "1": "x", "2": "y"})

		if analysis.Score != 1 {
			t.Errorf("Score got %d, want 1", analysis.Score)
		}
		if analysis.Score+len(analysis.WeakSpots) != analysis.Total {
			t.Errorf("score %d + weak spots %d must equal total %d", analysis.Score, len(analysis.WeakSpots), analysis.Total)
		}
		if len(analysis.TopicsToReview) != 1 || analysis.TopicsToReview[0] != "osmosis" {
			t.Errorf("TopicsToReview got %v, want deduplicated [osmosis]", analysis.TopicsToReview)
		}
		if llm.Calls != 1 {
			t.Errorf("LLM calls got %d, want 1", llm.Calls)
		}
	})

	t.Run("Perfect_Score_Skips_Model", func(t *testing.T) {
		llm := &MockLLM{}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		analysis := s.AnalyzeWeakSpots(testCtx(), questions, map[string]string{"0": "a", "1": "b", "2": "c"})

		if analysis.Score != 3 || len(analysis.WeakSpots) != 0 {
			t.Fatalf("expected perfect score, got %+v", analysis)
		}
		if analysis.Recommendation != "Excellent! You've mastered all the topics covered in this quiz." {
			t.Errorf("Recommendation got %q", analysis.Recommendation)
		}
		if llm.Calls != 0 {
			t.Errorf("LLM calls got %d, want 0", llm.Calls)
		}
	})

	t.Run("Recommendation_Failure_Falls_Back_To_Topic_List", func(t *testing.T) {
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				return "", errors.New("provider down")
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		analysis := s.AnalyzeWeakSpots(testCtx(), questions, map[string]string{"0": "x", "1": "x", "2": "x"})

		if !strings.HasPrefix(analysis.Recommendation, "Focus on reviewing: ") {
			t.Errorf("Recommendation got %q, want topic listing fallback", analysis.Recommendation)
		}
		if !strings.Contains(analysis.Recommendation, "osmosis") {
			t.Errorf("fallback should name the weak topics, got %q", analysis.Recommendation)
		}
	})
}

func TestGenerateSamplePaper_Scenarios(t *testing.T) {
	patternJSON := `{"sections":[{"name":"Section A","type":"mcq","count":2,"marks_per_question":2,"description":"MCQs"},{"name":"Section B","type":"long","count":1,"marks_per_question":10,"description":"Essays"}],"total_marks":14,"difficulty":"Medium"}`
	sectionJSON := `[{"question":"What is osmosis?","answer":"Water diffusion."},{"question":"Define diffusion.","answer":"Particle spread."}]`

	t.Run("Pattern_Failure_Is_Fatal", func(t *testing.T) {
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				return "not a pattern", nil
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		_, err := s.GenerateSamplePaper(testCtx(), "session-1", "old paper text")
		var parseErr *ragErrors.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected a parse error, got %v", err)
		}
	})

	t.Run("Bad_Section_Is_Skipped", func(t *testing.T) {
		calls := 0
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				calls++
				switch calls {
				case 1:
					return patternJSON, nil
				case 2:
					return sectionJSON, nil
				default:
					return "garbage", nil
				}
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		result, err := s.GenerateSamplePaper(testCtx(), "session-1", "old paper text")
		if err != nil {
			t.Fatalf("GenerateSamplePaper failed: %v", err)
		}
		if len(result.Paper) != 1 {
			t.Fatalf("Paper sections got %d, want 1 (bad section skipped)", len(result.Paper))
		}
		if result.Paper[0].Section != "Section A" {
			t.Errorf("Section got %q", result.Paper[0].Section)
		}
		if result.Paper[0].Marks != 4 {
			t.Errorf("Marks got %d, want count*marks_per_question=4", result.Paper[0].Marks)
		}
		if len(result.OriginalPattern.Sections) != 2 {
			t.Errorf("OriginalPattern must keep every extracted section")
		}
	})
}

func TestGenerateSlideOutline_Scenarios(t *testing.T) {
	t.Run("Unparseable_Output_Returns_Empty_List", func(t *testing.T) {
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				return "no slides here", nil
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		slides, err := s.GenerateSlideOutline(testCtx(), "session-1", "osmosis", 5)
		if err != nil {
			t.Fatalf("GenerateSlideOutline failed: %v", err)
		}
		if slides == nil || len(slides) != 0 {
			t.Errorf("slides got %v, want empty non-nil list", slides)
		}
	})

	t.Run("Empty_Session", func(t *testing.T) {
		idx := &MockIndex{
			OnSearch: func(ctx context.Context, sessionId string, v []float32, k int, src string) ([]commonModels.Match, error) {
				return nil, nil
			},
		}
		s := newTestService(idx, &MockLLM{}, &MockEmbedder{})

		_, err := s.GenerateSlideOutline(testCtx(), "session-1", "osmosis", 5)
		if !errors.Is(err, ragErrors.ErrNoContent) {
			t.Fatalf("expected ErrNoContent, got %v", err)
		}
	})

	t.Run("Valid_Outline", func(t *testing.T) {
		llm := &MockLLM{
			OnComplete: func(ctx context.Context, sys string, user string, temp float32) (string, error) {
				return `[{"title":"Intro","points":["a","b","c"],"notes":"Speaker notes."}]`, nil
			},
		}
		s := newTestService(&MockIndex{}, llm, &MockEmbedder{})

		slides, err := s.GenerateSlideOutline(testCtx(), "session-1", "osmosis", 1)
		if err != nil {
			t.Fatalf("GenerateSlideOutline failed: %v", err)
		}
		if len(slides) != 1 || slides[0].Title != "Intro" {
			t.Errorf("slides got %+v", slides)
		}
	})
}

func TestIngestDocument_Scenarios(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(idx *MockIndex, emb *MockEmbedder, ext *MockExtractor)
		expectedStatus jobModel.JobStatus
		expectedAdded  int
	}{
		{
			name:           "Ingestion_Success",
			setupMocks:     func(idx *MockIndex, emb *MockEmbedder, ext *MockExtractor) {},
			expectedStatus: jobModel.JobStatusComplete,
			expectedAdded:  1,
		},
		{
			name: "Empty_Document_Completes_With_Zero",
			setupMocks: func(idx *MockIndex, emb *MockEmbedder, ext *MockExtractor) {
				ext.OnExtract = func(ctx context.Context, path string, docType commonModels.DocType) ([]ingest.Page, int, error) {
					return nil, 0, nil
				}
			},
			expectedStatus: jobModel.JobStatusComplete,
			expectedAdded:  0,
		},
		{
			name: "Extraction_Failure",
			setupMocks: func(idx *MockIndex, emb *MockEmbedder, ext *MockExtractor) {
				ext.OnExtract = func(ctx context.Context, path string, docType commonModels.DocType) ([]ingest.Page, int, error) {
					return nil, 0, errors.New("corrupt file")
				}
			},
			expectedStatus: jobModel.JobStatusError,
		},
		{
			name: "Indexing_Failure",
			setupMocks: func(idx *MockIndex, emb *MockEmbedder, ext *MockExtractor) {
				idx.OnAdd = func(ctx context.Context, sessionId string, fragments []commonModels.Fragment, vectors [][]float32) (int, error) {
					return 0, errors.New("disk full")
				}
			},
			expectedStatus: jobModel.JobStatusError,
			expectedAdded:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dummyFile := "test_ingest.txt"
			os.WriteFile(dummyFile, []byte("test content for ingestion"), 0644)
			defer os.Remove(dummyFile)

			idx := &MockIndex{}
			emb := &MockEmbedder{}
			ext := &MockExtractor{}
			tt.setupMocks(idx, emb, ext)

			s := rag.NewService(idx, &MockLLM{}, emb, ext)

			job := jobModel.Job{
				Id:        "ingest-job-1",
				SessionId: "session-1",
				JobPayload: jobModel.JobPayload{
					IngestFileName: "test_ingest.txt",
					IngestURL:      dummyFile,
					ContentType:    commonModels.TXT,
				},
			}

			result := s.IngestDocument(testCtx(), job)

			if result.Status != tt.expectedStatus {
				t.Errorf("Status got %v, want %v", result.Status, tt.expectedStatus)
			}
			if result.JobPayload.FragmentsAdded != tt.expectedAdded {
				t.Errorf("FragmentsAdded got %d, want %d", result.JobPayload.FragmentsAdded, tt.expectedAdded)
			}
		})
	}
}
