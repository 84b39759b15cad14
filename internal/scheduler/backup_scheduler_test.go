package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimarketpro/digimarket-backend/config"
	"github.com/digimarketpro/digimarket-backend/internal/kvstore"
)

func TestBackupScheduler_RunOnce(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "products", []byte(`[{"id":"prod_1"}]`)))
	require.NoError(t, store.Save(ctx, "wishlist:cust_1", []byte(`[]`)))

	backupDir := t.TempDir()
	sched := NewBackupScheduler(store, config.BackupConfig{Dir: backupDir})

	require.NoError(t, sched.RunOnce(ctx))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	snapshotDir := filepath.Join(backupDir, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(snapshotDir, "products.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"prod_1"}]`, string(data))

	_, err = os.Stat(filepath.Join(snapshotDir, "wishlist__cust_1.json"))
	assert.NoError(t, err)
}

func TestBackupScheduler_StartDisabledWithoutSchedule(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sched := NewBackupScheduler(store, config.BackupConfig{})
	assert.NoError(t, sched.Start())
	sched.Stop()
}
