package driver

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/meilisearch/meilisearch-go"
)

const taskTimeout = 15 * time.Second

// MeilisearchDriver talks to one named Meilisearch index. Document upserts
// and deletes are enqueued as engine tasks; Refresh waits for the last
// enqueued task, which covers everything before it since tasks are
// processed in order.
type MeilisearchDriver struct {
	client meilisearch.ServiceManager
	index  meilisearch.IndexManager

	mu          sync.Mutex
	lastTaskUID int64
	hasTask     bool
}

func NewMeilisearchDriver(client meilisearch.ServiceManager, indexName string) *MeilisearchDriver {
	return &MeilisearchDriver{
		client: client,
		index:  client.Index(indexName),
	}
}

func (d *MeilisearchDriver) recordTask(uid int64) {
	d.mu.Lock()
	d.lastTaskUID = uid
	d.hasTask = true
	d.mu.Unlock()
}

func (d *MeilisearchDriver) IndexDocuments(ctx context.Context, docs []SearchDocumentRecord) error {
	if len(docs) == 0 {
		return nil
	}

	flat := make([]map[string]any, len(docs))
	for i, doc := range docs {
		flat[i] = doc.Flatten()
	}

	task, err := d.index.AddDocuments(flat, nil)
	if err != nil {
		return &DriverError{
			Op:  "IndexDocuments",
			Err: err.Error(),
		}
	}
	d.recordTask(task.TaskUID)

	return nil
}

func (d *MeilisearchDriver) DeleteDocuments(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	task, err := d.index.DeleteDocuments(ids, nil)
	if err != nil {
		return &DriverError{
			Op:  "DeleteDocuments",
			Err: err.Error(),
		}
	}
	d.recordTask(task.TaskUID)

	return nil
}

func (d *MeilisearchDriver) DocumentExists(ctx context.Context, id string) (bool, error) {
	var raw map[string]any
	err := d.index.GetDocument(id, nil, &raw)
	if err != nil {
		var msErr *meilisearch.Error
		if errors.As(err, &msErr) && msErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, &DriverError{
			Op:  "DocumentExists",
			Err: err.Error(),
		}
	}
	return true, nil
}

func (d *MeilisearchDriver) CountDocuments(ctx context.Context) (int64, error) {
	stats, err := d.index.GetStats()
	if err != nil {
		return 0, &DriverError{
			Op:  "CountDocuments",
			Err: err.Error(),
		}
	}
	return stats.NumberOfDocuments, nil
}

// GetSchema returns the currently registered attributes. The engine's
// default searchable wildcard means "no mapping registered yet" and is
// reported as empty.
func (d *MeilisearchDriver) GetSchema(ctx context.Context) (searchable, filterable, sortable []string, err error) {
	settings, err := d.index.GetSettings()
	if err != nil {
		return nil, nil, nil, &DriverError{
			Op:  "GetSchema",
			Err: err.Error(),
		}
	}

	searchable = settings.SearchableAttributes
	if slices.Contains(searchable, "*") {
		searchable = nil
	}
	return searchable, settings.FilterableAttributes, settings.SortableAttributes, nil
}

func (d *MeilisearchDriver) UpdateSchema(ctx context.Context, searchable, filterable, sortable []string) error {
	task, err := d.index.UpdateSettings(&meilisearch.Settings{
		SearchableAttributes: searchable,
		FilterableAttributes: filterable,
		SortableAttributes:   sortable,
	})
	if err != nil {
		return &DriverError{
			Op:  "UpdateSchema",
			Err: err.Error(),
		}
	}

	// Settings changes take effect asynchronously; wait so searches after
	// registration see the new attributes.
	if _, err := d.index.WaitForTask(task.TaskUID, taskTimeout); err != nil {
		return &DriverError{
			Op:  "UpdateSchema",
			Err: "failed to wait for settings update: " + err.Error(),
		}
	}

	return nil
}

// Refresh blocks until the last enqueued document task has been processed.
func (d *MeilisearchDriver) Refresh(ctx context.Context) error {
	d.mu.Lock()
	uid, has := d.lastTaskUID, d.hasTask
	d.mu.Unlock()

	if !has {
		return nil
	}

	if _, err := d.index.WaitForTask(uid, taskTimeout); err != nil {
		return &DriverError{
			Op:  "Refresh",
			Err: err.Error(),
		}
	}
	return nil
}

func (d *MeilisearchDriver) EnsureIndex(ctx context.Context, indexName string) error {
	if _, err := d.client.GetIndex(indexName); err == nil {
		return nil
	}

	task, err := d.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        indexName,
		PrimaryKey: "id",
	})
	if err != nil {
		return &DriverError{
			Op:  "EnsureIndex",
			Err: "failed to create index: " + err.Error(),
		}
	}

	if _, err := d.client.WaitForTask(task.TaskUID, taskTimeout); err != nil {
		return &DriverError{
			Op:  "EnsureIndex",
			Err: "failed to wait for index creation: " + err.Error(),
		}
	}

	return nil
}

func (d *MeilisearchDriver) Search(ctx context.Context, query string, limit, offset int64) ([]SearchDocumentRecord, int64, time.Duration, error) {
	return d.search(query, &meilisearch.SearchRequest{
		Query:  query,
		Limit:  limit,
		Offset: offset,
	}, "Search")
}

func (d *MeilisearchDriver) SearchInSection(ctx context.Context, query, section string, limit, offset int64) ([]SearchDocumentRecord, int64, time.Duration, error) {
	return d.search(query, &meilisearch.SearchRequest{
		Query:  query,
		Limit:  limit,
		Offset: offset,
		Filter: buildSectionFilter(section),
	}, "SearchInSection")
}

func (d *MeilisearchDriver) search(query string, req *meilisearch.SearchRequest, op string) ([]SearchDocumentRecord, int64, time.Duration, error) {
	result, err := d.index.Search(query, req)
	if err != nil {
		return nil, 0, 0, &DriverError{
			Op:  op,
			Err: err.Error(),
		}
	}

	docs := make([]SearchDocumentRecord, 0, len(result.Hits))
	for _, hit := range result.Hits {
		var hitMap map[string]interface{}
		if err := hit.DecodeInto(&hitMap); err != nil {
			continue
		}

		doc := SearchDocumentRecord{
			ID:     getString(hitMap, "id"),
			URL:    getString(hitMap, "url"),
			Fields: make(map[string]any, len(hitMap)),
		}
		for k, v := range hitMap {
			if k == "id" || k == "url" {
				continue
			}
			doc.Fields[k] = v
		}
		docs = append(docs, doc)
	}

	took := time.Duration(result.ProcessingTimeMs) * time.Millisecond
	return docs, result.EstimatedTotalHits, took, nil
}

func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
