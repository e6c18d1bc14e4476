package domain

import "time"

// SearchResult binds a parameter type to a typed response envelope. One
// instantiation per (parameters, document) pairing gives callers
// compile-time-checked access to the hits.
type SearchResult[P any] struct {
	Params         P
	Hits           []SearchDocument
	EstimatedTotal int64
	ProcessingTime time.Duration
}

// ContentQuery is the general free-text query over the content index.
type ContentQuery struct {
	Query  string
	Limit  int64
	Offset int64
}

// SectionQuery restricts a free-text query to one site section.
type SectionQuery struct {
	Query   string
	Section string
	Limit   int64
	Offset  int64
}
