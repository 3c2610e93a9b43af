package domain

import (
	"focusflow/internal/platform/hostname"
)

// State is what the blocker remembers between launches.
type State struct {
	SessionID string  `json:"currentSessionId,omitempty"`
	Token     string  `json:"authToken,omitempty"`
	Blocklist []Entry `json:"currentBlocklist"`
}

func (s State) Active() bool {
	return s.SessionID != ""
}

func (s State) Domains() []string {
	return Domains(s.Blocklist)
}

func Domains(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if d := hostname.Normalize(e.Value); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// Union keeps first-seen order and drops repeats.
func Union(a, b []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, d := range list {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}

type Tab struct {
	ID      int    `json:"id"`
	URL     string `json:"url"`
	Reloads int    `json:"reloads"`
}

// Host is the tab's hostname without "www.", or "" when the URL has none.
func (t Tab) Host() string {
	return hostname.Normalize(t.URL)
}

// AffectedTabs are tabs whose host equals one of domains or is a subdomain
// of one.
func AffectedTabs(tabs []Tab, domains []string) []Tab {
	if len(domains) == 0 {
		return nil
	}
	out := []Tab{}
	for _, tab := range tabs {
		host := tab.Host()
		if host == "" {
			continue
		}
		for _, d := range domains {
			if hostname.Matches(host, d) {
				out = append(out, tab)
				break
			}
		}
	}
	return out
}

// Decision is the outcome of a simulated main-frame navigation.
type Decision struct {
	URL      string
	Host     string
	Blocked  bool
	RuleID   int
	Reported bool
}

type Status struct {
	Active    bool
	SessionID string
	Rules     []Rule
	Tabs      []Tab
}
