package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/meilisearch/meilisearch-go"

	"content-indexer/config"
	"content-indexer/logger"
)

// initMeilisearchClient initializes the Meilisearch client with retry
// logic while the engine comes up.
func initMeilisearchClient(cfg *config.Config) (meilisearch.ServiceManager, error) {
	const maxRetries = 5
	const retryDelay = 5 * time.Second

	logger.Logger.Info("Connecting to Meilisearch", "host", cfg.Meilisearch.Host)

	var msClient meilisearch.ServiceManager

	for i := range maxRetries {
		msClient = meilisearch.New(cfg.Meilisearch.Host,
			meilisearch.WithAPIKey(cfg.Meilisearch.APIKey),
			meilisearch.WithCustomClient(&http.Client{Timeout: cfg.Meilisearch.Timeout}),
		)

		if _, healthErr := msClient.Health(); healthErr != nil {
			logger.Logger.Warn("Meilisearch not ready, retrying", "attempt", i+1, "max", maxRetries, "err", healthErr)
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
				continue
			}
			return nil, fmt.Errorf("failed to connect to Meilisearch after %d attempts: %w", maxRetries, healthErr)
		}

		logger.Logger.Info("Connected to Meilisearch successfully")
		break
	}

	return msClient, nil
}
