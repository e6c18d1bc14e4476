package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseDriver reads CMS content rows and writes back indexing status.
type DatabaseDriver struct {
	pool *pgxpool.Pool
}

func NewDatabaseDriver(pool *pgxpool.Pool) *DatabaseDriver {
	return &DatabaseDriver{pool: pool}
}

// NewDatabaseDriverFromURL creates a DatabaseDriver with a connection pool
// for the given database URL.
func NewDatabaseDriverFromURL(ctx context.Context, dbURL string, connectTimeout time.Duration) (*DatabaseDriver, error) {
	pool, err := initDatabasePool(ctx, dbURL, connectTimeout)
	if err != nil {
		return nil, err
	}
	return &DatabaseDriver{pool: pool}, nil
}

func initDatabasePool(ctx context.Context, dbURL string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, &DriverError{
			Op:  "initDatabasePool",
			Err: "failed to parse database URL: " + err.Error(),
		}
	}
	if connectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = connectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, &DriverError{
			Op:  "initDatabasePool",
			Err: "failed to create database pool: " + err.Error(),
		}
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &DriverError{
			Op:  "initDatabasePool",
			Err: "failed to ping database: " + err.Error(),
		}
	}

	return pool, nil
}

// Close closes the database connection pool.
func (d *DatabaseDriver) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

// GetContentPage returns up to limit non-trashed content rows with
// id > lastID, ordered by id, plus the id cursor for the next page.
func (d *DatabaseDriver) GetContentPage(ctx context.Context, lastID int64, limit int) ([]*ContentRecord, int64, error) {
	query := `
		SELECT c.id, c.name, c.content_type, c.properties, c.published, c.updated_at
		FROM cms_content c
		WHERE c.id > $1 AND NOT c.trashed
		ORDER BY c.id
		LIMIT $2
	`

	rows, err := d.pool.Query(ctx, query, lastID, limit)
	if err != nil {
		return nil, 0, &DriverError{Op: "GetContentPage", Err: err.Error()}
	}
	defer rows.Close()

	var records []*ContentRecord
	nextID := lastID

	for rows.Next() {
		record, err := scanContent(rows.Scan)
		if err != nil {
			return nil, 0, &DriverError{Op: "GetContentPage", Err: err.Error()}
		}
		records = append(records, record)
		nextID = record.ID
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &DriverError{Op: "GetContentPage", Err: err.Error()}
	}

	return records, nextID, nil
}

func (d *DatabaseDriver) GetContentByID(ctx context.Context, id int64) (*ContentRecord, error) {
	query := `
		SELECT c.id, c.name, c.content_type, c.properties, c.published, c.updated_at
		FROM cms_content c
		WHERE c.id = $1 AND NOT c.trashed
	`

	row := d.pool.QueryRow(ctx, query, id)
	record, err := scanContent(row.Scan)
	if err != nil {
		return nil, &DriverError{Op: "GetContentByID", Err: err.Error()}
	}
	return record, nil
}

// GetSettings returns the raw key/value rows of the search settings entity.
func (d *DatabaseDriver) GetSettings(ctx context.Context) (map[string]string, error) {
	rows, err := d.pool.Query(ctx, `SELECT key, value FROM cms_search_settings`)
	if err != nil {
		return nil, &DriverError{Op: "GetSettings", Err: err.Error()}
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, &DriverError{Op: "GetSettings", Err: err.Error()}
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, &DriverError{Op: "GetSettings", Err: err.Error()}
	}

	return settings, nil
}

// SaveIndexingStatus records the audit outcome of an index/remove attempt
// on the content row.
func (d *DatabaseDriver) SaveIndexingStatus(ctx context.Context, contentID int64, status, message string) error {
	query := `
		UPDATE cms_content
		SET index_status = $2, index_message = $3, indexed_at = now()
		WHERE id = $1
	`

	if _, err := d.pool.Exec(ctx, query, contentID, status, message); err != nil {
		return &DriverError{Op: "SaveIndexingStatus", Err: err.Error()}
	}
	return nil
}

func scanContent(scan func(dest ...any) error) (*ContentRecord, error) {
	var record ContentRecord
	var propsRaw []byte

	if err := scan(&record.ID, &record.Name, &record.ContentType, &propsRaw, &record.Published, &record.UpdatedAt); err != nil {
		return nil, err
	}

	if len(propsRaw) > 0 {
		if err := json.Unmarshal(propsRaw, &record.Properties); err != nil {
			return nil, fmt.Errorf("invalid properties JSON for content %d: %w", record.ID, err)
		}
	}
	if record.Properties == nil {
		record.Properties = map[string]any{}
	}

	return &record, nil
}
