package handlers

import (
	"encoding/base64"
	"net/http"

	"github.com/akolanti/StudyRAG/internal/adapter"
	"github.com/akolanti/StudyRAG/internal/adapter/utils"
	"github.com/akolanti/StudyRAG/internal/api"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/domain/studyModel"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

var logRH *logger_i.Logger

// newJobData carries one file through upload -> queue.
type newJobData struct {
	id             string
	sessionId      string
	traceId        string
	documentName   string
	documentSource string
	contentType    commonModels.DocType
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// CreateSessionHandler godoc
// @Summary      Create a study session
// @Description  Registers a new session and returns its id. All ingestion and generation is scoped to a session.
// @Tags         Session
// @Produce      json
// @Success      201  {object}  api.SessionResponse
// @Router       /session [post]
func CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	sessionId := utils.GetNewUUID()
	if err := sessionStore().InitSession(r.Context(), sessionId); err != nil {
		logRH.Error("Failed to init session", "err", err)
		WriteErrorResponse(w, http.StatusInternalServerError, sessionId, "Could not create session")
		return
	}
	writeJsonResponse(w, http.StatusCreated, api.SessionResponse{SessionId: sessionId})
}

// DeleteSessionHandler godoc
// @Summary      Delete a study session
// @Description  Drops the session registry entry, its chat history and every indexed fragment. Idempotent: deleting twice reports zero fragments the second time.
// @Tags         Session
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.DeleteSessionResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /session/{id} [delete]
func DeleteSessionHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}
	sessionId := utils.GetChiURLParam(r, "id")

	deleted, err := handlerInstance.index.DeleteSession(r.Context(), sessionId)
	if err != nil {
		logRH.Error("Failed to delete session vectors", "session", sessionId, "err", err)
		writeWorkflowError(w, err)
		return
	}
	if err := sessionStore().DropSession(r.Context(), sessionId); err != nil {
		logRH.Error("Failed to drop session registry entry", "session", sessionId, "err", err)
	}

	writeJsonResponse(w, http.StatusOK, api.DeleteSessionResponse{
		SessionId:        sessionId,
		DeletedFragments: deleted,
	})
}

// ListDocumentsHandler godoc
// @Summary      List session documents
// @Description  Returns the distinct source document names indexed in the session.
// @Tags         Session
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  api.DocumentListResponse
// @Failure      503  {object}  api.ErrorResponse
// @Router       /session/{id}/documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	sessionId := utils.GetChiURLParam(r, "id")

	sources, err := handlerInstance.index.ListSources(r.Context(), sessionId)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	if sources == nil {
		sources = []string{}
	}
	writeJsonResponse(w, http.StatusOK, api.DocumentListResponse{SessionId: sessionId, Documents: sources})
}

// GetStatusHandler godoc
// @Summary      Get ingestion job status
// @Description  Retrieves the current status of a document ingestion job using its ID.
// @Tags         Job Status
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse
// @Failure      404  {object}  api.JobResponse
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, traceIdFrom(r))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// ChatHandler godoc
// @Summary      Chat with your documents
// @Description  Answers a question grounded in the session's indexed material, with citations. Recent chat history is folded into the prompt.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.ChatRequest  true  "Session and message"
// @Success      200      {object}  api.ChatResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var req api.ChatRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" || req.Message == "" {
		logRH.Warn("Bad Chat Request: ", "error:", err)
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id and message are required"})
		return
	}
	if !sessionStore().ValidateSession(r.Context(), req.SessionId) {
		writeJsonResponse(w, http.StatusNotFound, api.ErrorResponse{Error: "unknown session"})
		return
	}

	history, err := sessionStore().GetHistory(r.Context(), req.SessionId)
	if err != nil {
		logRH.Warn("Could not load chat history", "err", err)
	}

	result, err := handlerInstance.rag.Chat(r.Context(), req.SessionId, req.Message, history)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}

	if err := sessionStore().SaveExchange(r.Context(), req.SessionId, req.Message, result.Response); err != nil {
		logRH.Error("Failed to save chat exchange", "err", err)
	}
	writeJsonResponse(w, http.StatusOK, api.ChatResponse{Response: result.Response, Sources: result.Sources})
}

// TeachHandler godoc
// @Summary      Teaching-mode explanation
// @Description  Explains a concept from the session's material like a tutor, optionally in another language. Output is phrased to be spoken.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.TeachRequest  true  "Session, message and optional language"
// @Success      200      {object}  api.ChatResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /teach [post]
func TeachHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.TeachRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" || req.Message == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id and message are required"})
		return
	}
	if !sessionStore().ValidateSession(r.Context(), req.SessionId) {
		writeJsonResponse(w, http.StatusNotFound, api.ErrorResponse{Error: "unknown session"})
		return
	}

	result, err := handlerInstance.rag.Teach(r.Context(), req.SessionId, req.Message, req.Language)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.ChatResponse{Response: result.Response, Sources: result.Sources})
}

// SummaryHandler godoc
// @Summary      Summarize material
// @Description  Produces a brief or detailed summary, either of pasted text or of one indexed document (or all of them).
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.SummaryRequest  true  "Summary request"
// @Success      200      {object}  api.SummaryResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /summary [post]
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.SummaryRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id is required"})
		return
	}

	summary, err := handlerInstance.rag.Summarize(r.Context(), studyModel.SummaryRequest{
		SessionId:    req.SessionId,
		SummaryType:  req.SummaryType,
		Context:      req.Context,
		SourceFilter: req.SourceFilter,
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.SummaryResponse{Summary: summary, Type: req.SummaryType})
}

// QuizHandler godoc
// @Summary      Generate a quiz
// @Description  Builds multiple-choice questions from the session's material. Question count is capped by how much material exists; degraded outcomes come back in warning/error fields.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.QuizRequest  true  "Quiz request"
// @Success      200      {object}  studyModel.QuizResult
// @Failure      400      {object}  api.ErrorResponse
// @Router       /quiz [post]
func QuizHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.QuizRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id is required"})
		return
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = 10
	}

	result, err := handlerInstance.rag.GenerateQuiz(r.Context(), studyModel.QuizRequest{
		SessionId:    req.SessionId,
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, result)
}

// QuizAnalyzeHandler godoc
// @Summary      Analyze quiz answers
// @Description  Grades submitted answers, lists weak spots and returns a study recommendation.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.QuizAnalyzeRequest  true  "Questions and the student's answers keyed by question index"
// @Success      200      {object}  studyModel.QuizAnalysis
// @Failure      400      {object}  api.ErrorResponse
// @Router       /quiz/analyze [post]
func QuizAnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.QuizAnalyzeRequest
	if err := decodeBody(r, &req); err != nil || len(req.Questions) == 0 {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "questions are required"})
		return
	}

	analysis := handlerInstance.rag.AnalyzeWeakSpots(r.Context(), req.Questions, req.Answers)
	writeJsonResponse(w, http.StatusOK, analysis)
}

// PaperHandler godoc
// @Summary      Generate a sample exam paper
// @Description  Extracts the structure of a previous-year paper and generates fresh questions from the session's material in the same shape.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.PaperRequest  true  "Session and previous-year paper text"
// @Success      200      {object}  studyModel.PaperResult
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /paper [post]
func PaperHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.PaperRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id is required"})
		return
	}

	result, err := handlerInstance.rag.GenerateSamplePaper(r.Context(), req.SessionId, req.PyqText)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, result)
}

// SlidesHandler godoc
// @Summary      Generate a slide outline
// @Description  Drafts presentation slides (title, bullets, speaker notes) on a topic from the session's material.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        request  body      api.SlidesRequest  true  "Session, topic and slide count"
// @Success      200      {object}  api.SlidesResponse
// @Failure      400      {object}  api.ErrorResponse
// @Router       /slides [post]
func SlidesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.SlidesRequest
	if err := decodeBody(r, &req); err != nil || req.SessionId == "" || req.Topic == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "session_id and topic are required"})
		return
	}

	slides, err := handlerInstance.rag.GenerateSlideOutline(r.Context(), req.SessionId, req.Topic, req.NumSlides)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.SlidesResponse{Topic: req.Topic, Slides: slides})
}

// ImageHandler godoc
// @Summary      Generate an image
// @Description  Generates an illustration from a prompt. Falls back to the secondary provider when the primary fails.
// @Tags         Media
// @Accept       json
// @Produce      json
// @Param        request  body      api.ImageRequest  true  "Image prompt"
// @Success      200      {object}  api.ImageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /image [post]
func ImageHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.ImageRequest
	if err := decodeBody(r, &req); err != nil || req.Prompt == "" {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "prompt is required"})
		return
	}

	result, provider, err := handlerInstance.media.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.ImageResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(result.Data),
		MimeType:    result.MimeType,
		Provider:    provider,
	})
}

// SpeechHandler godoc
// @Summary      Synthesize speech
// @Description  Converts text to spoken audio. Given a question and session id instead of text, the tutor workflow produces the answer that gets spoken. Falls back to the secondary provider when the primary fails.
// @Tags         Media
// @Accept       json
// @Produce      json
// @Param        request  body      api.SpeechRequest  true  "Text to speak"
// @Success      200      {object}  api.SpeechResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /speech [post]
func SpeechHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}

	var req api.SpeechRequest
	if err := decodeBody(r, &req); err != nil || (req.Text == "" && req.Question == "") {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "text or question is required"})
		return
	}

	text := req.Text
	if text == "" {
		if !sessionStore().ValidateSession(r.Context(), req.SessionId) {
			writeJsonResponse(w, http.StatusNotFound, api.ErrorResponse{Error: "unknown session"})
			return
		}
		taught, err := handlerInstance.rag.Teach(r.Context(), req.SessionId, req.Question, req.Language)
		if err != nil {
			writeWorkflowError(w, err)
			return
		}
		text = taught.Response
	}

	result, provider, err := handlerInstance.media.Synthesize(r.Context(), text)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.SpeechResponse{
		AudioBase64: base64.StdEncoding.EncodeToString(result.Data),
		MimeType:    result.MimeType,
		Provider:    provider,
	})
}
