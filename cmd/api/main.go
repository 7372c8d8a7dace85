// @title           StudyRAG API
// @version         1.0
// @description     Session-scoped study assistant over your own documents
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/StudyRAG/internal/config"
	"github.com/akolanti/StudyRAG/internal/data/store"
	jobmodel "github.com/akolanti/StudyRAG/internal/domain/jobModel"
	"github.com/akolanti/StudyRAG/internal/handlers"
	"github.com/akolanti/StudyRAG/internal/job"
	"github.com/akolanti/StudyRAG/internal/media"
	"github.com/akolanti/StudyRAG/internal/media/geminiMedia"
	"github.com/akolanti/StudyRAG/internal/media/openaiMedia"
	"github.com/akolanti/StudyRAG/internal/rag"
	"github.com/akolanti/StudyRAG/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/StudyRAG/internal/rag/ingest"
	"github.com/akolanti/StudyRAG/internal/rag/llm/gemini"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex/memoryIndex"
	"github.com/akolanti/StudyRAG/internal/rag/sessionIndex/qdrantDB"
	"github.com/akolanti/StudyRAG/internal/server"
	"github.com/akolanti/StudyRAG/internal/worker"
	"github.com/akolanti/StudyRAG/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	if jobStore := store.GetRedisJobStore(serviceContext); jobStore != nil {
		serviceConfig.JobStore = jobStore
	}
	if sessionStore := store.GetRedisSessionStore(serviceContext); sessionStore != nil {
		serviceConfig.SessionStore = sessionStore
	}
	logger.Info("Starting job service")

	if serviceConfig.JobStore == nil || serviceConfig.SessionStore == nil {
		logger.Error("Redis stores are offline")
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			return
		}
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.SessionStore = store.InitInMemorySessionStore()
	}
	service := job.InitJobService(serviceConfig)

	var index sessionIndex.Index
	if qdrant := qdrantDB.GetQuadrantClient(serviceContext); qdrant != nil {
		index = qdrant
	} else {
		logger.Error("Qdrant is offline, falling back to in-memory index")
		index = memoryIndex.InitMemoryIndex()
	}

	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
	llmProvider := gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)

	if embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	//media providers: gemini primary, openai secondary
	var primary media.Provider = geminiMedia.GetGeminiMedia(serviceContext, config.GoogleAPIKey)
	var secondary media.Provider
	if p := openaiMedia.GetOpenAIMedia(config.OpenAIAPIKey); p != nil {
		secondary = p
	}
	if primary == nil {
		if secondary == nil {
			logger.Error("No media provider available. Shutting down.")
			return
		}
		logger.Error("Gemini media provider unavailable, running on secondary only")
		primary = secondary
		secondary = nil
	}
	mediaService := media.NewService(primary, secondary)

	extractor := ingest.NewFileExtractor(mediaService)
	ragService := rag.NewService(index, llmProvider, embeddingService, extractor)

	handlers.InitHandlers(service, ragService, mediaService, index)

	//init worker pool
	worker.InitServices(service, ragService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
