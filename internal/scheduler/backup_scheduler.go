// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
	"github.com/digimarketpro/digimarket-backend/pkg/logger"
)

// BackupScheduler periodically copies every store snapshot into a
// timestamped directory so a corrupted backend can be rebuilt by hand.
type BackupScheduler struct {
	cron  *cron.Cron
	store kvstore.Store
	cfg   config.BackupConfig
}

func NewBackupScheduler(store kvstore.Store, cfg config.BackupConfig) *BackupScheduler {
	return &BackupScheduler{
		cron:  cron.New(),
		store: store,
		cfg:   cfg,
	}
}

// Start registers the cron job. An empty schedule disables backups.
func (s *BackupScheduler) Start() error {
	if s.cfg.Schedule == "" {
		logger.Info("Backup scheduler disabled (no schedule configured)", nil)
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			logger.Error("Scheduled backup failed", err)
		}
	})
	if err != nil {
		logger.Error("Failed to register backup cron job", err, map[string]interface{}{
			"schedule": s.cfg.Schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Backup scheduler started", map[string]interface{}{
		"schedule": s.cfg.Schedule,
		"dir":      s.cfg.Dir,
	})
	return nil
}

func (s *BackupScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Backup scheduler stopped", nil)
}

// RunOnce copies every key into <dir>/<timestamp>/<key>.json.
// Colons in keys are not portable as filenames, so they become "__",
// matching the file backend's own layout.
func (s *BackupScheduler) RunOnce(ctx context.Context) error {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list store keys: %w", err)
	}

	dir := filepath.Join(s.cfg.Dir, time.Now().UTC().Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, key := range keys {
		data, err := s.store.Load(ctx, key)
		if err != nil {
			logger.Warn("Skipping key during backup", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			continue
		}

		name := strings.ReplaceAll(key, ":", "__") + ".json"
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup for %s: %w", key, err)
		}
	}

	logger.Info("Backup completed", map[string]interface{}{
		"dir":  dir,
		"keys": len(keys),
	})
	return nil
}
