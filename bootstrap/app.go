package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"content-indexer/builder"
	"content-indexer/config"
	"content-indexer/consumer"
	"content-indexer/domain"
	"content-indexer/driver"
	"content-indexer/driver/cmsapi"
	"content-indexer/gateway"
	"content-indexer/logger"
	"content-indexer/usecase"
	appOtel "content-indexer/utils/otel"
)

// App holds all components of the content-indexer service.
type App struct {
	httpServer    *http.Server
	dbDriver      *driver.DatabaseDriver
	eventConsumer *consumer.Consumer
	otelShutdown  appOtel.ShutdownFunc
}

// Run initializes all components and starts the service.
// It blocks until ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	// ── OpenTelemetry ──
	otelCfg := appOtel.ConfigFromEnv()
	otelShutdown, err := appOtel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// ── Logger ──
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("Starting content-indexer",
		"service", otelCfg.ServiceName,
		"otel_enabled", otelCfg.Enabled,
	)

	// ── Load config ──
	appCfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return err
	}

	// ── Drivers (infrastructure layer) ──
	dbURL, err := appCfg.Database.ConnectionString()
	if err != nil {
		logger.Logger.Error("Invalid database configuration", "err", err)
		return err
	}
	dbDriver, err := driver.NewDatabaseDriverFromURL(ctx, dbURL, appCfg.Database.Timeout)
	if err != nil {
		logger.Logger.Error("Failed to initialize database driver", "err", err)
		return err
	}
	logger.Logger.Info("Database connected successfully")

	msClient, err := initMeilisearchClient(appCfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize Meilisearch", "err", err)
		dbDriver.Close()
		return err
	}

	cmsClient := cmsapi.NewClient(appCfg.CMS.BaseURL, appCfg.CMS.ServiceToken)

	// ── Gateways (anti-corruption layer) ──
	contentRepo := gateway.NewContentRepositoryGateway(dbDriver)
	settingsRepo := gateway.NewSettingsGateway(dbDriver, map[string]string{
		domain.SettingBatchSize: strconv.Itoa(config.BatchSize),
	})
	urlResolver := gateway.NewURLResolverGateway(cmsClient)

	settings := usecase.NewLoadSettingsUsecase(settingsRepo, logger.Logger).Execute(ctx)
	logger.Logger.Info("Search settings loaded",
		"index", settings.IndexName(),
		"batch_size", settings.BatchSize(),
		"exclusion_property", settings.ExclusionProperty(),
	)

	searchDriver := driver.NewMeilisearchDriver(msClient, settings.IndexName())
	searchEngine := gateway.NewSearchEngineGateway(searchDriver, settings.IndexName())

	if err := searchEngine.EnsureIndex(ctx); err != nil {
		logger.Logger.Error("Failed to ensure search index", "err", err)
		dbDriver.Close()
		return err
	}

	// ── Use cases (application layer) ──
	docBuilder := builder.NewPageBuilder()
	indexUsecase := usecase.NewIndexContentUsecase(urlResolver, searchEngine, docBuilder, settings, logger.Logger)
	buildUsecase := usecase.NewBuildIndexUsecase(contentRepo, searchEngine, indexUsecase, settings, logger.Logger)
	mappingUsecase := usecase.NewEnsureMappingUsecase(searchEngine, docBuilder, logger.Logger)
	countUsecase := usecase.NewCountDocumentsUsecase(searchEngine, logger.Logger)
	searchUsecase := usecase.NewSearchContentUsecase(searchEngine)

	if _, err := mappingUsecase.Execute(ctx); err != nil {
		logger.Logger.Error("Failed to ensure index mapping", "err", err)
		dbDriver.Close()
		return err
	}

	// ── Redis Streams Consumer ──
	var eventConsumer *consumer.Consumer
	consumerCfg := consumer.ConfigFromEnv()
	if consumerCfg.Enabled {
		eventHandler := consumer.NewContentEventHandler(indexUsecase, contentRepo, logger.Logger)
		eventConsumer, err = consumer.NewConsumer(consumerCfg, eventHandler, logger.Logger)
		if err != nil {
			logger.Logger.Error("Failed to create Redis Streams consumer", "err", err)
		} else if err := eventConsumer.Start(ctx); err != nil {
			logger.Logger.Error("Failed to start Redis Streams consumer", "err", err)
		} else {
			logger.Logger.Info("Redis Streams consumer started",
				"stream", consumerCfg.StreamKey,
				"group", consumerCfg.GroupName,
			)
		}
	} else {
		logger.Logger.Info("Redis Streams consumer disabled")
	}

	// ── Periodic rebuild (optional) ──
	if config.RebuildInterval > 0 {
		go runRebuildLoop(ctx, buildUsecase)
	}

	// ── HTTP server ──
	app := &App{
		httpServer:    newHTTPServer(searchUsecase, buildUsecase, countUsecase, mappingUsecase, appCfg.HTTP, otelCfg),
		dbDriver:      dbDriver,
		eventConsumer: eventConsumer,
		otelShutdown:  otelShutdown,
	}

	go func() {
		logger.Logger.Info("http listen", "addr", appCfg.HTTP.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Error("http", "err", err)
		}
	}()

	<-ctx.Done()
	app.shutdown()
	return nil
}

// shutdown performs graceful shutdown of all components.
func (a *App) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown error", "err", err)
	}
	if a.eventConsumer != nil {
		a.eventConsumer.Stop()
	}
	if a.dbDriver != nil {
		a.dbDriver.Close()
	}

	otelCtx, otelCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer otelCancel()
	if err := a.otelShutdown(otelCtx); err != nil {
		fmt.Printf("Failed to shutdown OpenTelemetry: %v\n", err)
	}
}

// newRetryBackoff creates the backoff policy for rebuild retries.
func newRetryBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 5 * time.Second
	bo.MaxInterval = 5 * time.Minute
	bo.Multiplier = 2
	return bo
}

// runRebuildLoop runs a full index build on a fixed interval, with
// exponential backoff after failures.
func runRebuildLoop(ctx context.Context, buildUsecase *usecase.BuildIndexUsecase) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger.Error("rebuild loop panic", "err", r)
		}
	}()

	bo := newRetryBackoff()
	for {
		start := time.Now()
		result, err := buildUsecase.Execute(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			recordRebuildError(ctx)
			delay := bo.NextBackOff()
			logger.Logger.Error("rebuild error, retrying", "err", err, "retry_in", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			}
			continue
		}
		bo.Reset()
		recordRebuild(ctx, result, time.Since(start))

		logger.Logger.Info("rebuild complete",
			"indexed", result.IndexedCount,
			"removed", result.RemovedCount,
			"skipped", result.SkippedCount,
		)

		select {
		case <-time.After(config.RebuildInterval):
		case <-ctx.Done():
			return
		}
	}
}

func recordRebuild(ctx context.Context, result *usecase.BuildResult, duration time.Duration) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	if result.IndexedCount > 0 {
		m.IndexedTotal.Add(ctx, int64(result.IndexedCount))
	}
	if result.RemovedCount > 0 {
		m.RemovedTotal.Add(ctx, int64(result.RemovedCount))
	}
	m.BuildDuration.Record(ctx, duration.Seconds())
}

func recordRebuildError(ctx context.Context) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	m.ErrorsTotal.Add(ctx, 1)
}
