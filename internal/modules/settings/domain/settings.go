package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	NotificationsEnabled      = "notifications_enabled"
	NotificationSetupComplete = "notification_setup_complete"
	AudioVolume               = "audio_volume"
	AudioMuted                = "audio_muted"
	ExtensionPromptShown      = "extension_prompt_shown"

	DefaultVolume = 0.7
)

type kind int

const (
	kindBool kind = iota
	kindVolume
)

var known = map[string]kind{
	NotificationsEnabled:      kindBool,
	NotificationSetupComplete: kindBool,
	AudioVolume:               kindVolume,
	AudioMuted:                kindBool,
	ExtensionPromptShown:      kindBool,
}

// Defaults returns the value of every known setting for a user who never
// changed anything.
func Defaults() map[string]string {
	return map[string]string{
		NotificationsEnabled:      "false",
		NotificationSetupComplete: "false",
		AudioVolume:               strconv.FormatFloat(DefaultVolume, 'f', -1, 64),
		AudioMuted:                "false",
		ExtensionPromptShown:      "false",
	}
}

func Names() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Canonical validates raw for the named setting and returns its stored form.
func Canonical(name, raw string) (string, error) {
	k, ok := known[name]
	if !ok {
		return "", fmt.Errorf("unknown setting %q", name)
	}
	raw = strings.TrimSpace(raw)
	switch k {
	case kindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return "", fmt.Errorf("%s must be true or false", name)
		}
		return strconv.FormatBool(v), nil
	default:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return "", fmt.Errorf("%s must be a number between 0 and 1", name)
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
}

// Audio is the playback configuration derived from a user's settings.
type Audio struct {
	Volume float64
	Muted  bool
}

type Preferences struct {
	NotificationsEnabled      bool
	NotificationSetupComplete bool
	ExtensionPromptShown      bool
	Audio                     Audio
}

// Resolve overlays stored values on the defaults. Values that no longer
// parse fall back to their default.
func Resolve(stored map[string]string) Preferences {
	values := Defaults()
	for name, raw := range stored {
		if v, err := Canonical(name, raw); err == nil {
			values[name] = v
		}
	}
	volume, _ := strconv.ParseFloat(values[AudioVolume], 64)
	return Preferences{
		NotificationsEnabled:      values[NotificationsEnabled] == "true",
		NotificationSetupComplete: values[NotificationSetupComplete] == "true",
		ExtensionPromptShown:      values[ExtensionPromptShown] == "true",
		Audio: Audio{
			Volume: volume,
			Muted:  values[AudioMuted] == "true",
		},
	}
}
