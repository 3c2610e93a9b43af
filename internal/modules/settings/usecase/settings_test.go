package usecase_test

import (
	"context"
	"errors"
	"testing"

	"focusflow/internal/modules/settings/domain"
	"focusflow/internal/modules/settings/service"
	"focusflow/internal/modules/settings/usecase"
	apperrors "focusflow/internal/platform/errors"
)

type memoryStore struct {
	values map[string]map[string]string
}

func (m *memoryStore) Load(_ context.Context, userID string) (map[string]string, error) {
	out := map[string]string{}
	for k, v := range m.values[userID] {
		out[k] = v
	}
	return out, nil
}

func (m *memoryStore) Save(_ context.Context, userID, name, value string) error {
	if m.values == nil {
		m.values = map[string]map[string]string{}
	}
	if m.values[userID] == nil {
		m.values[userID] = map[string]string{}
	}
	m.values[userID][name] = value
	return nil
}

func TestSettingsGetSetList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &memoryStore{}
	uc := usecase.NewInteractor(service.NewSettingsService(store))

	got, err := uc.Get(ctx, "u1", domain.AudioVolume)
	if err != nil || got.Value != "0.7" || !got.Default {
		t.Fatalf("expected default volume, got %+v (%v)", got, err)
	}

	if _, err := uc.Set(ctx, "u1", domain.AudioVolume, "2"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := uc.Set(ctx, "u1", "unknown", "1"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown name, got %v", err)
	}
	if _, err := uc.Get(ctx, "u1", "unknown"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown get, got %v", err)
	}

	if _, err := uc.Set(ctx, "u1", domain.NotificationsEnabled, "yes"); err == nil {
		t.Fatalf("expected yes to be rejected")
	}
	if _, err := uc.Set(ctx, "u1", domain.NotificationsEnabled, "true"); err != nil {
		t.Fatalf("set: %v", err)
	}

	all, err := uc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(domain.Names()) {
		t.Fatalf("expected every known setting, got %d", len(all))
	}
	for _, s := range all {
		if s.Name == domain.NotificationsEnabled && (s.Value != "true" || s.Default) {
			t.Fatalf("unexpected stored setting %+v", s)
		}
	}

	prefs, err := uc.Preferences(ctx, "u1")
	if err != nil || !prefs.NotificationsEnabled || prefs.Volume != 0.7 {
		t.Fatalf("unexpected preferences %+v (%v)", prefs, err)
	}
	other, _ := uc.Preferences(ctx, "u2")
	if other.NotificationsEnabled {
		t.Fatalf("settings leaked across users")
	}
}
