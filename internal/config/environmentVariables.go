package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//llm
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	ClassificationSample = 1000  //chars of document text sent for type detection
	AnalysisCharLimit    = 30000 //gemini token limits - tune if the model changes
	TruncationMarker     = "\n[Document truncated due to length...]"

	//document analysis fallbacks
	DefaultDocType  = "default"
	DefaultLanguage = "en"
	UnknownLanguage = "unknown"

	//office apps drop ~$ lock files next to open documents
	TempFilePrefix = "~$"

	//pdf pages can hang the parser on malformed content streams
	PageExtractionTimeout = 10 * time.Second

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	//redis has 16 DB we can use
	RedisJobStore    = 0
	RedisReportStore = 1

	//redis timeouts
	RedisJobStoreTTL    = 24 * time.Hour
	RedisReportStoreTTL = 24 * time.Hour
)

// credentials are read once at process start - no rotation or refresh
var (
	GeminiAPIKey  = os.Getenv("GEMINI_API_KEY")
	AuthToken     = os.Getenv("API_AUTH_TOKEN")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
	NoAuthBypass  = os.Getenv("NO_AUTH_BYPASS") == "true" //local dev only
)
