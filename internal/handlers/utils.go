package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/akolanti/StudyRAG/internal/adapter"
	"github.com/akolanti/StudyRAG/internal/api"
	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/domain/ragErrors"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateId(id string, traceId string) (result jobModel.Job, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return jobModel.Job{}, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

// writeWorkflowError maps the service error taxonomy onto transport codes.
// Degraded-but-successful shapes never reach here, workflows return those as
// plain results.
func writeWorkflowError(w http.ResponseWriter, err error) {
	var inputErr *ragErrors.InputError
	var providerErr *ragErrors.ProviderError
	var parseErr *ragErrors.ParseError

	switch {
	case errors.As(err, &inputErr):
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: inputErr.Message})
	case errors.Is(err, ragErrors.ErrNoContent):
		writeJsonResponse(w, http.StatusNotFound, api.ErrorResponse{Error: "No documents found in your session. Please upload study materials first."})
	case errors.Is(err, ragErrors.ErrStorageUnavailable):
		writeJsonResponse(w, http.StatusServiceUnavailable, api.ErrorResponse{Error: "Index temporarily unavailable. Please retry."})
	case errors.As(err, &providerErr), errors.As(err, &parseErr):
		writeJsonResponse(w, http.StatusBadGateway, api.ErrorResponse{Error: "Generation failed. Please try again."})
	default:
		writeJsonResponse(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Internal Server Error"})
	}
}

func getTargetDirectory() (string, string) {
	root, err := os.Getwd()
	if err != nil {
		return "", "Storage Error"
	}

	targetDir := filepath.Join(root, "temporary_data")
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return "", "Storage Error"
	}
	return targetDir, ""
}

// decodeBody closes the request body after decoding into dest.
func decodeBody(r *http.Request, dest interface{}) error {
	defer func() {
		if err := r.Body.Close(); err != nil {
			logRH.Error("Couldn't close the request body reader :", err)
		}
	}()
	return json.NewDecoder(r.Body).Decode(dest)
}

func traceIdFrom(r *http.Request) string {
	if v, ok := r.Context().Value(config.TRACE_ID_KEY).(string); ok {
		return v
	}
	return ""
}
