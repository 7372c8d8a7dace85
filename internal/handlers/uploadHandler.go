package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akolanti/StudyRAG/internal/adapter"
	"github.com/akolanti/StudyRAG/internal/adapter/utils"
	"github.com/akolanti/StudyRAG/internal/api"
	"github.com/akolanti/StudyRAG/internal/domain/commonModels"
	"github.com/akolanti/StudyRAG/internal/rag/ingest"
)

const maxUploadSize = 32 << 20 //32mb

// PostUploadHandler godoc
// @Summary      Upload documents for ingestion
// @Description  Receives one or more files via multipart/form-data, saves them to a temporary directory, and queues one ingestion job per file. A file the system cannot handle fails its own job only.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        id     path      string  true  "Session ID"
// @Param        files  formData  file    true  "PDF, DOCX, TXT, image or audio files"
// @Success      202  {object}  api.UploadResponse
// @Failure      400  {object}  api.ErrorResponse
// @Failure      500  {object}  api.ErrorResponse
// @Router       /session/{id}/upload [post]
func PostUploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	sessionId := utils.GetChiURLParam(r, "id")
	if !sessionStore().ValidateSession(r.Context(), sessionId) {
		writeJsonResponse(w, http.StatusNotFound, api.ErrorResponse{Error: "unknown session"})
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		writeJsonResponse(w, http.StatusInternalServerError, api.ErrorResponse{Error: errString})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "File too large or bad request"})
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "no files uploaded"})
		return
	}

	var queued []api.InitJobResponse
	for _, header := range files {
		docType := ingest.DocTypeFor(header.Filename)
		if docType == commonModels.ERR {
			logRH.Warn("Skipping unsupported upload", "file", header.Filename)
			continue
		}

		tempFilePath, err := saveUploadedFile(header, targetDir)
		if err != nil {
			logRH.Error("Could not store uploaded file", "file", header.Filename, "err", err)
			continue
		}

		newJob := newJobData{
			id:             utils.GetNewUUID(),
			sessionId:      sessionId,
			traceId:        traceIdFrom(r),
			documentName:   header.Filename,
			documentSource: tempFilePath,
			contentType:    docType,
		}
		CreateNewJob(newJob)
		queued = append(queued, adapter.ToInitJobResponse(newJob.id, header.Filename))
	}

	if len(queued) == 0 {
		writeJsonResponse(w, http.StatusBadRequest, api.ErrorResponse{Error: "no supported files in upload"})
		return
	}
	writeJsonResponse(w, http.StatusAccepted, api.UploadResponse{Jobs: queued})
}

func saveUploadedFile(header *multipart.FileHeader, targetDir string) (string, error) {
	fileReader, err := header.Open()
	if err != nil {
		return "", err
	}
	defer fileReader.Close()

	filename := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	tempFilePath := filepath.Join(targetDir, filename)

	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return "", err
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		return "", err
	}
	return tempFilePath, nil
}
