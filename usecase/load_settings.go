package usecase

import (
	"context"
	"log/slog"

	"content-indexer/domain"
	"content-indexer/port"
)

// LoadSettingsUsecase loads the CMS search settings entity. On failure the
// defaults are used so the indexer keeps working without the settings row.
type LoadSettingsUsecase struct {
	settingsRepo port.SettingsRepository
	logger       *slog.Logger
}

func NewLoadSettingsUsecase(settingsRepo port.SettingsRepository, logger *slog.Logger) *LoadSettingsUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadSettingsUsecase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (u *LoadSettingsUsecase) Execute(ctx context.Context) *domain.SearchSettings {
	settings, err := u.settingsRepo.LoadSearchSettings(ctx)
	if err != nil {
		u.logger.Warn("failed to load search settings, using defaults", "err", err)
		return domain.DefaultSearchSettings()
	}
	return settings
}
