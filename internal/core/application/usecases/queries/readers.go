package queries

import (
	"context"

	"courierhub/internal/core/domain/model/courier"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/payout"
	"courierhub/internal/core/domain/model/settings"
)

// Read-side views of the repositories. Query handlers run outside a unit of
// work, so every read is a single statement against committed state. The
// ports repositories satisfy these interfaces.
type (
	CourierReader interface {
		Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
		GetAll(ctx context.Context) ([]*courier.Courier, error)
		GetAllLive(ctx context.Context) ([]*courier.Courier, error)
	}

	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
		GetUncompleted(ctx context.Context) ([]*order.Order, error)
	}

	SettingsReader interface {
		GetCurrent(ctx context.Context) (settings.DispatchWeights, error)
	}

	LedgerReader interface {
		ListByCourier(ctx context.Context, courierID kernel.UUID, limit int) ([]*payout.Entry, error)
	}

	// PositionReader is the read half of ports.PositionCache.
	PositionReader interface {
		Get(ctx context.Context, courierID kernel.UUID) (*kernel.GeoPoint, error)
	}
)
