package port

import "context"

// URLResolver looks up the public URL of a content entity through the CMS
// URL provider. Unpublished or unroutable content yields an empty URL, not
// an error.
type URLResolver interface {
	ResolveURL(ctx context.Context, contentID int64) (string, error)
}
