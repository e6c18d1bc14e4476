package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("MEILISEARCH_HOST", "http://meilisearch:7700")
	t.Setenv("CMS_API_URL", "http://cms:8080/")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "cms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Meilisearch.Host != "http://meilisearch:7700" {
		t.Errorf("Meilisearch.Host = %q", cfg.Meilisearch.Host)
	}
	if cfg.CMS.BaseURL != "http://cms:8080" {
		t.Errorf("CMS.BaseURL = %q, want trailing slash stripped", cfg.CMS.BaseURL)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q, want default 5432", cfg.Database.Port)
	}
}

func TestLoad_MissingMeilisearchHost(t *testing.T) {
	t.Setenv("MEILISEARCH_HOST", "")
	t.Setenv("CMS_API_URL", "http://cms:8080")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without MEILISEARCH_HOST")
	}
}

func TestLoad_MissingCMSAPIURL(t *testing.T) {
	t.Setenv("MEILISEARCH_HOST", "http://meilisearch:7700")
	t.Setenv("CMS_API_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without CMS_API_URL")
	}
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		cfg     DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name: "explicit URL wins",
			cfg: DatabaseConfig{
				URL:  "postgres://app:pw@db:5432/cms",
				Host: "ignored",
			},
			want: "postgres://app:pw@db:5432/cms",
		},
		{
			name: "composed from parameters",
			cfg: DatabaseConfig{
				Host:     "db",
				Port:     "5432",
				Name:     "cms",
				User:     "indexer",
				Password: "pw",
			},
			want: "postgres://indexer:pw@db:5432/cms?sslmode=prefer",
		},
		{
			name:    "missing parameters",
			cfg:     DatabaseConfig{Host: "db", Port: "5432"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ConnectionString()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConnectionString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ConnectionString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_DatabaseURL(t *testing.T) {
	t.Setenv("MEILISEARCH_HOST", "http://meilisearch:7700")
	t.Setenv("CMS_API_URL", "http://cms:8080")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/cms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	url, err := cfg.Database.ConnectionString()
	if err != nil {
		t.Fatalf("ConnectionString: %v", err)
	}
	if url != "postgres://app:pw@db:5432/cms" {
		t.Errorf("ConnectionString() = %q", url)
	}
}

func TestGetEnvOrDefault_FileFallback(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(secretFile, []byte("s3cret\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	t.Setenv("CONTENT_INDEXER_DB_PASSWORD_FILE", secretFile)
	t.Setenv("CONTENT_INDEXER_DB_PASSWORD", "env-value")

	if got := getEnvOrDefault("CONTENT_INDEXER_DB_PASSWORD", ""); got != "s3cret" {
		t.Errorf("getEnvOrDefault = %q, want file content to win", got)
	}
}

func TestGetEnvOrDefault_Default(t *testing.T) {
	if got := getEnvOrDefault("CONTENT_INDEXER_NO_SUCH_VAR", "fallback"); got != "fallback" {
		t.Errorf("getEnvOrDefault = %q, want fallback", got)
	}
}
