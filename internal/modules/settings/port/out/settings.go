package out

import "context"

// SettingStore persists raw values addressed by (userID, name).
type SettingStore interface {
	Load(ctx context.Context, userID string) (map[string]string, error)
	Save(ctx context.Context, userID, name, value string) error
}
