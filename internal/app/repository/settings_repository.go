package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/digimarketpro/digimarket-backend/internal/app/model"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

type SettingsRepository interface {
	Get(ctx context.Context) model.StoreSettings
	// Replace overwrites the settings wholesale and persists them
	Replace(ctx context.Context, settings model.StoreSettings) error
}

type settingsRepository struct {
	store    kvstore.Store
	mu       sync.RWMutex
	settings model.StoreSettings
}

// NewSettingsRepository loads the persisted settings merged over the
// compiled-in defaults: fields absent from the stored JSON keep their
// default values (shallow merge).
func NewSettingsRepository(ctx context.Context, store kvstore.Store) SettingsRepository {
	settings := model.DefaultSettings()

	data, err := store.Load(ctx, KeySettings)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			logger.Warn("Failed to load settings, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return &settingsRepository{store: store, settings: settings}
	}

	// unmarshal into the defaults so stored fields override them in place
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("Corrupt settings snapshot, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		settings = model.DefaultSettings()
	}

	logger.Info("Settings loaded", map[string]interface{}{
		"store_name": settings.StoreName,
	})
	return &settingsRepository{store: store, settings: settings}
}

func (r *settingsRepository) Get(_ context.Context) model.StoreSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

func (r *settingsRepository) Replace(ctx context.Context, settings model.StoreSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = settings
	persist(ctx, r.store, KeySettings, r.settings)
	return nil
}
