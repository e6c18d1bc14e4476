package gateway

import (
	"context"

	"content-indexer/domain"
)

// URLDriver resolves content URLs through the CMS URL provider.
type URLDriver interface {
	ResolveURL(ctx context.Context, contentID int64) (string, error)
}

// URLResolverGateway adapts the CMS API client to the URLResolver port.
type URLResolverGateway struct {
	driver URLDriver
}

func NewURLResolverGateway(driver URLDriver) *URLResolverGateway {
	return &URLResolverGateway{driver: driver}
}

func (g *URLResolverGateway) ResolveURL(ctx context.Context, contentID int64) (string, error) {
	url, err := g.driver.ResolveURL(ctx, contentID)
	if err != nil {
		return "", &domain.URLResolutionError{
			Op:  "ResolveURL",
			Err: err.Error(),
		}
	}
	return url, nil
}
