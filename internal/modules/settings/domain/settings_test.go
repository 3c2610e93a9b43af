package domain_test

import (
	"testing"

	"focusflow/internal/modules/settings/domain"
)

func TestCanonical(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, raw, want string
		wantErr         bool
	}{
		{domain.AudioMuted, " TRUE ", "true", false},
		{domain.NotificationsEnabled, "0", "false", false},
		{domain.AudioVolume, "0.25", "0.25", false},
		{domain.AudioVolume, "1", "1", false},
		{domain.AudioVolume, "1.5", "", true},
		{domain.AudioVolume, "-0.1", "", true},
		{domain.AudioMuted, "maybe", "", true},
		{"theme", "dark", "", true},
	}
	for _, tc := range cases {
		got, err := domain.Canonical(tc.name, tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s=%q: expected error, got %q", tc.name, tc.raw, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%s=%q: expected %q, got %q (%v)", tc.name, tc.raw, tc.want, got, err)
		}
	}
}

func TestResolveDefaultsAndOverrides(t *testing.T) {
	t.Parallel()
	prefs := domain.Resolve(nil)
	if prefs.NotificationsEnabled || prefs.Audio.Muted || prefs.Audio.Volume != domain.DefaultVolume {
		t.Fatalf("unexpected defaults %+v", prefs)
	}

	prefs = domain.Resolve(map[string]string{
		domain.NotificationsEnabled: "true",
		domain.AudioVolume:          "0.3",
		domain.AudioMuted:           "garbage",
	})
	if !prefs.NotificationsEnabled || prefs.Audio.Volume != 0.3 || prefs.Audio.Muted {
		t.Fatalf("unexpected resolved preferences %+v", prefs)
	}
}
