// @title           Legal Document Analysis API
// @version         1.0
// @description     This API handles asynchronous legal document analysis
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

	"github.com/akolanti/LegalDocAPI/internal/config"
	"github.com/akolanti/LegalDocAPI/internal/data/store"
	jobmodel "github.com/akolanti/LegalDocAPI/internal/domain/jobModel"
	"github.com/akolanti/LegalDocAPI/internal/handlers"
	"github.com/akolanti/LegalDocAPI/internal/job"
	"github.com/akolanti/LegalDocAPI/internal/llm/gemini"
	"github.com/akolanti/LegalDocAPI/internal/pipeline"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/extract"
	"github.com/akolanti/LegalDocAPI/internal/pipeline/language"
	"github.com/akolanti/LegalDocAPI/internal/server"
	"github.com/akolanti/LegalDocAPI/internal/worker"
	"github.com/akolanti/LegalDocAPI/pkg/logger_i"
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
	logger.Info("Starting job service")

	jobStore := store.GetRedisJobStore(serviceContext)
	reportStore := store.GetRedisReportStore(serviceContext)
	if jobStore == nil || reportStore == nil {
		logger.Error("Redis stores are offline")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.ReportStore = store.InitReportStore()
	} else {
		serviceConfig.JobStore = jobStore
		serviceConfig.ReportStore = reportStore
	}
	service := job.InitJobService(serviceConfig)

	//external clients - a missing/invalid credential is fatal at startup
	//rather than a per-document "default" outcome later
	llmProvider := gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GeminiAPIKey)
	if llmProvider == nil {
		logger.Error("Gemini client failed to initialize. Shutting down.")
		return
	}

	detector := language.GetLinguaDetector()
	extractor := extract.NewFileExtractor()

	pipelineService := pipeline.NewService(extractor, detector, llmProvider)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, pipelineService)
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
