package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientout "focusflow/internal/modules/client/adapter/out"
	"focusflow/internal/modules/client/domain"
	apperrors "focusflow/internal/platform/errors"
)

func TestFileActiveCacheLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "active-session.json")
	cache := clientout.NewFileActiveCache(path)

	_, err := cache.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)

	want := domain.ActiveSession{
		SessionID:     "s1",
		UserID:        "u1",
		StartTime:     time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		WorkDuration:  25,
		BreakDuration: 5,
		Title:         "Deep work",
	}
	require.NoError(t, cache.Save(ctx, want))
	got, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, cache.Clear(ctx))
	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}

func TestFileActiveCacheRejectsGarbage(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "active-session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := clientout.NewFileActiveCache(path).Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNoActiveSession)
}
