package out

import (
	"context"
	"sort"
	"sync"

	"focusflow/internal/modules/extension/domain"
	extensionout "focusflow/internal/modules/extension/port/out"
)

// MemoryRuleEngine keeps rules for the life of the blocker process.
type MemoryRuleEngine struct {
	mu    sync.Mutex
	rules map[int]domain.Rule
}

func NewMemoryRuleEngine() extensionout.RuleEngine {
	return &MemoryRuleEngine{rules: map[int]domain.Rule{}}
}

func (e *MemoryRuleEngine) UpdateDynamicRules(_ context.Context, removeIDs []int, add []domain.Rule) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, id := range removeIDs {
		delete(e.rules, id)
	}
	for _, r := range add {
		e.rules[r.ID] = r
	}
	return nil
}

// Rules are returned in id order.
func (e *MemoryRuleEngine) Rules(_ context.Context) ([]domain.Rule, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Rule, 0, len(e.rules))
	for _, r := range e.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
