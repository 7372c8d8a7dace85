package api

import (
	"time"

	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

// responses---------------------

type SessionResponse struct {
	SessionId string `json:"session_id" example:"b2f7c9d4-1b2a-4c3d-9e8f-0a1b2c3d4e5f"`
}

type DeleteSessionResponse struct {
	SessionId        string `json:"session_id"`
	DeletedFragments int    `json:"deleted_fragments" example:"42"`
}

type DocumentListResponse struct {
	SessionId string   `json:"session_id"`
	Documents []string `json:"documents"`
}

type UploadResponse struct {
	Jobs []InitJobResponse `json:"jobs"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	FileName  string `json:"file_name,omitempty"`
	StatusURL string `json:"status_url"`
}

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	SessionId string            `json:"session_id"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status         string          `json:"status"`
	IngestResponse *IngestExternal `json:"ingest_response,omitempty"`
}

type IngestExternal struct {
	FileName       string `json:"file_name"`
	FragmentsAdded int    `json:"fragments_added"`
}

type ChatResponse struct {
	Response string   `json:"response"`
	Sources  []string `json:"sources"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
	Type    string `json:"type"`
}

type SlidesResponse struct {
	Topic  string             `json:"topic"`
	Slides []studyModel.Slide `json:"slides"`
}

type ImageResponse struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type" example:"image/png"`
	Provider    string `json:"provider" example:"gemini"`
}

type SpeechResponse struct {
	AudioBase64 string `json:"audio_base64"`
	MimeType    string `json:"mime_type" example:"audio/wav"`
	Provider    string `json:"provider" example:"gemini"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"session id is required"`
}

// requests---------------------

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type TeachRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Language  string `json:"language,omitempty" example:"English"`
}

type SummaryRequest struct {
	SessionId    string `json:"session_id" validate:"required"`
	SummaryType  string `json:"summary_type" example:"brief"`
	Context      string `json:"context,omitempty"`
	SourceFilter string `json:"source_filter,omitempty"`
}

type QuizRequest struct {
	SessionId    string `json:"session_id" validate:"required"`
	Topic        string `json:"topic,omitempty"`
	Difficulty   string `json:"difficulty" example:"medium"`
	NumQuestions int    `json:"num_questions" example:"10"`
}

type QuizAnalyzeRequest struct {
	Questions []studyModel.QuizQuestion `json:"questions" validate:"required"`
	Answers   map[string]string         `json:"answers" validate:"required"`
}

type PaperRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	PyqText   string `json:"pyq_text" validate:"required"`
}

type SlidesRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Topic     string `json:"topic" validate:"required"`
	NumSlides int    `json:"num_slides" example:"5"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// SpeechRequest carries either literal text to speak, or a question plus a
// session id to run through the tutor workflow before synthesis.
type SpeechRequest struct {
	Text      string `json:"text,omitempty"`
	SessionId string `json:"session_id,omitempty"`
	Question  string `json:"question,omitempty"`
	Language  string `json:"language,omitempty" example:"English"`
}
