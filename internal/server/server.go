package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/StudyRAG/internal/adapter/utils"
	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/middleware"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	WorkerStop       chan bool
	Group            *sync.WaitGroup
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Get("/health", middleware.GetHandler)

	//session lifecycle
	r.Router.Post("/session", middleware.CreateSessionHandler)
	r.Router.Delete("/session/{id}", middleware.DeleteSessionHandler)
	r.Router.Get("/session/{id}/documents", middleware.ListDocumentsHandler)

	//ingestion
	r.Router.Post("/session/{id}/upload", middleware.PostUploadHandler)
	r.Router.Get("/status/{id}", middleware.GetStatusHandler)

	//generation workflows
	r.Router.Post("/chat", middleware.ChatHandler)
	r.Router.Post("/teach", middleware.TeachHandler)
	r.Router.Post("/summary", middleware.SummaryHandler)
	r.Router.Post("/quiz", middleware.QuizHandler)
	r.Router.Post("/quiz/analyze", middleware.QuizAnalyzeHandler)
	r.Router.Post("/paper", middleware.PaperHandler)
	r.Router.Post("/slides", middleware.SlidesHandler)

	//media
	r.Router.Post("/image", middleware.ImageHandler)
	r.Router.Post("/speech", middleware.SpeechHandler)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	println("\nServer is shutting down", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully: %s", err)
		}

		//close workers
		close(shutdownParams.WorkerStop)
		shutdownParams.Group.Wait()
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully is shutting down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
