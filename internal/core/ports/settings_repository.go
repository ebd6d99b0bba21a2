package ports

import (
	"context"

	"courierhub/internal/core/domain/model/settings"
)

// SettingsRepository stores versioned dispatch weights.
type SettingsRepository interface {
	// GetCurrent returns the highest version, creating the defaults as
	// version 1 on first use.
	GetCurrent(ctx context.Context) (settings.DispatchWeights, error)

	// Save inserts weights as a new version. Saving a version that already
	// exists fails with errs.VersionIsInvalidError.
	Save(ctx context.Context, weights settings.DispatchWeights) error
}
