package domain

import (
	"fmt"
	"strings"
	"time"

	"focusflow/internal/platform/hostname"
)

type EntryType string

const (
	TypeWebsite EntryType = "website"
	TypeApp     EntryType = "app"
)

func (t EntryType) Validate() error {
	switch t {
	case TypeWebsite, TypeApp:
		return nil
	default:
		return fmt.Errorf("unknown blocklist type: %s", t)
	}
}

type Entry struct {
	ID        string
	UserID    string
	Type      EntryType
	Value     string
	CreatedAt time.Time
}

type Candidate struct {
	Type  EntryType
	Value string
}

// NormalizeValue reduces websites to a bare domain; app identifiers are only
// trimmed and lowercased.
func NormalizeValue(t EntryType, raw string) string {
	if t == TypeWebsite {
		return hostname.Normalize(raw)
	}
	return strings.ToLower(strings.TrimSpace(raw))
}

// Candidates normalizes the request, drops empty values and keeps only the
// first occurrence of a value repeated within the request. Websites come
// before apps.
func Candidates(websites, apps []string) []Candidate {
	out := make([]Candidate, 0, len(websites)+len(apps))
	seen := map[string]struct{}{}
	add := func(t EntryType, values []string) {
		for _, raw := range values {
			value := NormalizeValue(t, raw)
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, Candidate{Type: t, Value: value})
		}
	}
	add(TypeWebsite, websites)
	add(TypeApp, apps)
	return out
}

// Websites returns the website values of entries in order.
func Websites(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type == TypeWebsite {
			out = append(out, e.Value)
		}
	}
	return out
}
