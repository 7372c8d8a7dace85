package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//chunking - a fragment targets ~1000 chars with a 200 char carry-over between neighbours
	ChunkSize    = 1000
	ChunkOverlap = 200

	//retrieval depth per workflow
	ChatRetrievalK     = 15
	TeachingRetrievalK = 10
	SummaryRetrievalK  = 20
	QuizRetrievalK     = 20

	//quiz sizing
	QuizMinQuestions     = 5
	QuizMaxQuestions     = 50
	QuizWordsPerQuestion = 40

	//context clamps fed to the model (chars)
	QuizContextLimit    = 10000
	SummaryContextLimit = 15000
	PaperContextLimit   = 15000

	EmbeddingOutputDimensionality int32 = 1536
	FragmentCollectionName              = "study_fragments"

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//ingest job buffer limit
	BufferLimit = 100

	//vectorDB
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false
	QdrantPoolSize          = 1
	QdrantKeepAliveTimeout  = 30 * time.Second

	//llm
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"
	GeminiTTSModelName   = "gemini-2.5-flash-preview-tts"
	GeminiImageModelName = "imagen-3.0-generate-002"
	GeminiTTSVoice       = "Kore"

	//openai - secondary provider for the media fallback policy
	OpenAIWhisperModel = "whisper-1"
	OpenAITTSModel     = "tts-1"
	OpenAITTSVoice     = "alloy"
	OpenAIImageModel   = "dall-e-3"
	OpenAITTSCharLimit = 4000

	//per-call temperatures - never a shared mutable setting
	DefaultTemperature  float32 = 0.3
	TeachingTemperature float32 = 0.5

	//async transcription polling
	TranscribePollInterval = 1 * time.Second
	TranscribePollCeiling  = 60 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisSessionStore = 1

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisSessionStoreTTL = 24 * time.Hour
)
