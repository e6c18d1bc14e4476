package domain

// DocumentBuilder encodes the per-content-type knowledge: which fields a
// document carries, whether an entity is eligible for indexing at all, and
// the schema the index mapping is derived from.
type DocumentBuilder interface {
	// PopulateFields fills the type-specific fields of doc from content.
	// The id and url are already set by the creation pipeline.
	PopulateFields(content *Content, doc *SearchDocument) error

	// ShouldIndex reports whether the entity is eligible for indexing.
	// Callers decide whether to consult it before Index; the index service
	// does not invoke it internally.
	ShouldIndex(content *Content) bool

	// Schema describes the document fields for mapping registration.
	Schema() IndexSchema
}
