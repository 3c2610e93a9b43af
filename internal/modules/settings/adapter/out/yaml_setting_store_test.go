package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingsout "focusflow/internal/modules/settings/adapter/out"
)

func TestYAMLSettingStoreKeepsUsersApart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "settings.yaml")
	store := settingsout.NewYAMLSettingStore(path)

	empty, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, store.Save(ctx, "u1", "audio_muted", "true"))
	require.NoError(t, store.Save(ctx, "u2", "audio_volume", "0.2"))
	require.NoError(t, store.Save(ctx, "u1", "audio_muted", "false"))

	reopened := settingsout.NewYAMLSettingStore(path)
	u1, err := reopened.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"audio_muted": "false"}, u1)

	u2, err := reopened.Load(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"audio_volume": "0.2"}, u2)
}

func TestYAMLSettingStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: [not, a, map"), 0o600))
	_, err := settingsout.NewYAMLSettingStore(path).Load(context.Background(), "u1")
	require.Error(t, err)
}
