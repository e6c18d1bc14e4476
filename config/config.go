package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Database    DatabaseConfig
	Meilisearch MeilisearchConfig
	CMS         CMSConfig
	HTTP        HTTPConfig
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	Timeout  time.Duration
}

// ConnectionString returns the pgx connection URL: DATABASE_URL when set,
// otherwise composed from the individual parameters.
func (c DatabaseConfig) ConnectionString() (string, error) {
	if c.URL != "" {
		return c.URL, nil
	}
	if c.Host == "" || c.Port == "" || c.Name == "" || c.User == "" || c.Password == "" {
		return "", fmt.Errorf("database connection parameters are not set. Required: DATABASE_URL, or DB_HOST, DB_PORT, DB_NAME, CONTENT_INDEXER_DB_USER, CONTENT_INDEXER_DB_PASSWORD")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=prefer", c.User, c.Password, c.Host, c.Port, c.Name), nil
}

type MeilisearchConfig struct {
	Host    string
	APIKey  string
	Timeout time.Duration
}

// CMSConfig points at the CMS internal API used for URL resolution.
type CMSConfig struct {
	BaseURL      string
	ServiceToken string
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

func Load() (*Config, error) {
	meiliHost := getEnvOrDefault("MEILISEARCH_HOST", "")
	if meiliHost == "" {
		return nil, fmt.Errorf("MEILISEARCH_HOST environment variable is not set")
	}

	cmsBaseURL := getEnvOrDefault("CMS_API_URL", "")
	if cmsBaseURL == "" {
		return nil, fmt.Errorf("CMS_API_URL environment variable is not set")
	}

	cfg := &Config{
		Database: DatabaseConfig{
			URL:      getEnvOrDefault("DATABASE_URL", ""),
			Host:     getEnvOrDefault("DB_HOST", ""),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			Name:     getEnvOrDefault("DB_NAME", ""),
			User:     getEnvOrDefault("CONTENT_INDEXER_DB_USER", ""),
			Password: getEnvOrDefault("CONTENT_INDEXER_DB_PASSWORD", ""),
			Timeout:  DBTimeout,
		},
		Meilisearch: MeilisearchConfig{
			Host:    meiliHost,
			APIKey:  getEnvOrDefault("MEILISEARCH_API_KEY", ""),
			Timeout: MeiliTimeout,
		},
		CMS: CMSConfig{
			BaseURL:      strings.TrimSuffix(cmsBaseURL, "/"),
			ServiceToken: getEnvOrDefault("CMS_SERVICE_TOKEN", ""),
		},
		HTTP: HTTPConfig{
			Addr:              HTTPAddr,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	return cfg, nil
}

// getEnvOrDefault reads an environment variable, with a _FILE suffix
// fallback for Docker secrets.
func getEnvOrDefault(key, defaultValue string) string {
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
