package domain

import (
	"focusflow/internal/platform/hostname"
)

const (
	// RuleIDOffset separates session rules from any static ones.
	RuleIDOffset = 10000
	// MaxSessionRules bounds the dynamic id range to 10001..12000.
	MaxSessionRules = 2000

	EntryWebsite = "website"

	ActionBlock       = "block"
	ResourceMainFrame = "main_frame"
)

type Rule struct {
	ID            int      `json:"id"`
	Priority      int      `json:"priority"`
	Action        string   `json:"action"`
	URLFilter     string   `json:"urlFilter"`
	ResourceTypes []string `json:"resourceTypes"`
}

// Domain is the host a "||domain" filter anchors on.
func (r Rule) Domain() string {
	return r.URLFilter[2:]
}

// Matches applies the filter to a main-frame navigation host.
func (r Rule) Matches(host string) bool {
	return hostname.Matches(host, r.Domain())
}

// Websites keeps website entries only.
func Websites(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == EntryWebsite {
			out = append(out, e)
		}
	}
	return out
}

// BuildRules turns website entries into block rules numbered from
// RuleIDOffset+1 in list order. Entries that normalize to nothing are skipped
// but still consume their index. Entries beyond MaxSessionRules are dropped.
func BuildRules(websites []Entry) []Rule {
	rules := make([]Rule, 0, len(websites))
	for idx, e := range websites {
		if idx >= MaxSessionRules {
			break
		}
		domain := hostname.Normalize(e.Value)
		if domain == "" {
			continue
		}
		rules = append(rules, NewBlockRule(RuleIDOffset+idx+1, domain))
	}
	return rules
}

func NewBlockRule(id int, domain string) Rule {
	return Rule{
		ID:            id,
		Priority:      1,
		Action:        ActionBlock,
		URLFilter:     "||" + domain,
		ResourceTypes: []string{ResourceMainFrame},
	}
}

// SessionRuleIDs is every id a session may have used.
func SessionRuleIDs() []int {
	ids := make([]int, MaxSessionRules)
	for i := range ids {
		ids[i] = RuleIDOffset + i + 1
	}
	return ids
}

func IsSessionRule(id int) bool {
	return id >= RuleIDOffset
}
