package memory

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/pkg/errs"
)

type SettingsRepository struct {
	uow *UnitOfWork
}

func (r *SettingsRepository) GetCurrent(ctx context.Context) (settings.DispatchWeights, error) {
	var current settings.DispatchWeights
	err := r.uow.do(ctx, func(s *state) error {
		if len(s.weights) == 0 {
			s.weights = append(s.weights, r.uow.store.defaults)
		}
		current = s.weights[len(s.weights)-1]
		return nil
	})
	return current, err
}

func (r *SettingsRepository) Save(ctx context.Context, weights settings.DispatchWeights) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	return r.uow.do(ctx, func(s *state) error {
		if n := len(s.weights); n > 0 && s.weights[n-1].Version() >= weights.Version() {
			return errs.NewVersionIsInvalidErrorWithCause("dispatch weights",
				fmt.Errorf("version %d already exists", weights.Version()))
		}
		s.weights = append(s.weights, weights)
		return nil
	})
}
