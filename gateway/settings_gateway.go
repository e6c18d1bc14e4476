package gateway

import (
	"context"

	"content-indexer/domain"
	"content-indexer/port"
)

// SettingsDriver loads the raw key/value rows of the search settings
// entity.
type SettingsDriver interface {
	GetSettings(ctx context.Context) (map[string]string, error)
}

// SettingsGateway adapts the settings driver to the SettingsRepository
// port. Base overrides (deployment-level configuration) apply first; the
// CMS settings rows win over them.
type SettingsGateway struct {
	driver        SettingsDriver
	baseOverrides map[string]string
}

func NewSettingsGateway(driver SettingsDriver, baseOverrides map[string]string) *SettingsGateway {
	return &SettingsGateway{
		driver:        driver,
		baseOverrides: baseOverrides,
	}
}

func (g *SettingsGateway) LoadSearchSettings(ctx context.Context) (*domain.SearchSettings, error) {
	rows, err := g.driver.GetSettings(ctx)
	if err != nil {
		return nil, &port.RepositoryError{
			Op:  "LoadSearchSettings",
			Err: err.Error(),
		}
	}

	overrides := make(map[string]string, len(g.baseOverrides)+len(rows))
	for k, v := range g.baseOverrides {
		overrides[k] = v
	}
	for k, v := range rows {
		overrides[k] = v
	}

	settings, err := domain.NewSearchSettings(overrides)
	if err != nil {
		return nil, &port.RepositoryError{
			Op:  "LoadSearchSettings",
			Err: err.Error(),
		}
	}
	return settings, nil
}
