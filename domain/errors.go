package domain

// SearchEngineError represents an error from the search engine layer.
type SearchEngineError struct {
	Op  string
	Err string
}

func (e *SearchEngineError) Error() string {
	return e.Op + ": " + e.Err
}

// URLResolutionError represents an error from the CMS URL provider.
type URLResolutionError struct {
	Op  string
	Err string
}

func (e *URLResolutionError) Error() string {
	return e.Op + ": " + e.Err
}
