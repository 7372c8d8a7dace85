package middleware

import (
	"net/http"
	"strconv"

	"github.com/akolanti/StudyRAG/internal/handlers"
	"github.com/akolanti/StudyRAG/internal/metrics"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
	id           string
}

var GetHandler = Wrap(handlers.GetHandler)

var CreateSessionHandler = Wrap(handlers.CreateSessionHandler)
var DeleteSessionHandler = Wrap(handlers.DeleteSessionHandler)
var ListDocumentsHandler = Wrap(handlers.ListDocumentsHandler)
var PostUploadHandler = Wrap(handlers.PostUploadHandler)
var GetStatusHandler = Wrap(handlers.GetStatusHandler)

var ChatHandler = Wrap(handlers.ChatHandler)
var TeachHandler = Wrap(handlers.TeachHandler)
var SummaryHandler = Wrap(handlers.SummaryHandler)
var QuizHandler = Wrap(handlers.QuizHandler)
var QuizAnalyzeHandler = Wrap(handlers.QuizAnalyzeHandler)
var PaperHandler = Wrap(handlers.PaperHandler)
var SlidesHandler = Wrap(handlers.SlidesHandler)
var ImageHandler = Wrap(handlers.ImageHandler)
var SpeechHandler = Wrap(handlers.SpeechHandler)

func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec})

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}
func processRequest(re requestResponseStruct) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")
	re = injectTrace(re)
	re = authenticate(re)
	if re.badRequest.isBadRequest {
		return re //stop if auth fails, Wrap writes the response
	}
	re = rateLimiter(re)
	return re
}
