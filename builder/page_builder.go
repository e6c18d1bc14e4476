// Package builder holds the per-content-type document builders.
package builder

import (
	"strings"

	"content-indexer/domain"
)

// pageFields declares the document fields of the page content type. The
// search tags drive the index mapping.
type pageFields struct {
	Title       string `search:"title,searchable,sortable"`
	Body        string `search:"body,searchable"`
	Summary     string `search:"summary,searchable"`
	Section     string `search:"section,filterable"`
	ContentType string `search:"content_type,filterable"`
	UpdatedAt   int64  `search:"updated_at,sortable"`
}

// PageBuilder builds search documents for page content.
type PageBuilder struct{}

func NewPageBuilder() *PageBuilder {
	return &PageBuilder{}
}

func (b *PageBuilder) PopulateFields(content *domain.Content, doc *domain.SearchDocument) error {
	doc.SetField("title", content.Name())
	doc.SetField("body", content.StringProperty("bodyText"))
	doc.SetField("summary", content.StringProperty("summary"))
	doc.SetField("section", sectionFromURL(doc.URL))
	doc.SetField("content_type", content.ContentType())
	doc.SetField("updated_at", content.UpdatedAt().Unix())
	return nil
}

// ShouldIndex: pages are eligible once published. Unpublished content has
// no URL and is filtered out by the creation pipeline anyway.
func (b *PageBuilder) ShouldIndex(content *domain.Content) bool {
	return content.Published()
}

func (b *PageBuilder) Schema() domain.IndexSchema {
	return domain.SchemaFromStruct(pageFields{})
}

// sectionFromURL takes the first path segment as the site section, "" for
// the root.
func sectionFromURL(url string) string {
	trimmed := strings.Trim(url, "/")
	if trimmed == "" {
		return ""
	}
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
