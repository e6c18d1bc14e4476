package driver

import "time"

// ContentRecord is a CMS content row as read from the database.
type ContentRecord struct {
	ID          int64
	Name        string
	ContentType string
	Properties  map[string]any
	Published   bool
	UpdatedAt   time.Time
}

// SearchDocumentRecord is a search document at the engine boundary.
type SearchDocumentRecord struct {
	ID     string
	URL    string
	Fields map[string]any
}

// Flatten produces the single JSON object sent to the engine.
func (r SearchDocumentRecord) Flatten() map[string]any {
	flat := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["url"] = r.URL
	return flat
}

// DriverError represents an error from the driver layer.
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
