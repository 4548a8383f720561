package ports

import (
	"context"

	"github.com/DmitruNS/kuc/internal/domain"
)

// SettingsRepository is the console's local key/value store: credential
// token, UI language, base-URL override. It plays the role the browser's
// localStorage played for the web console.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type FilterPreset struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	Filter    domain.ListingFilter `json:"filter"`
	CreatedAt string               `json:"created_at"`
}

type FilterPresetRepository interface {
	Save(ctx context.Context, name string, f domain.ListingFilter) (*FilterPreset, error)
	List(ctx context.Context) ([]*FilterPreset, error)
	Delete(ctx context.Context, id int64) error
}
