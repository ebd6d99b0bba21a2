// Package settingsrepo stores versioned dispatch weights. Each update inserts
// a new row; the highest version is the active one.
package settingsrepo

import (
	"context"
	"fmt"
	"time"

	"courierhub/internal/adapters/out/postgres/pgerrs"
	"courierhub/internal/core/domain/model/settings"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DispatchWeightsDTO struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Distance  float64   `gorm:"type:double precision;not null"`
	Rating    float64   `gorm:"type:double precision;not null"`
	Workload  float64   `gorm:"type:double precision;not null"`
	Response  float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (DispatchWeightsDTO) TableName() string {
	return "dispatch_weights"
}

type GormSettingsRepository struct {
	db       *gorm.DB
	defaults settings.DispatchWeights
}

// NewGormSettingsRepository returns a repository that seeds defaults as
// version 1 when the table is empty.
func NewGormSettingsRepository(db *gorm.DB, defaults settings.DispatchWeights) *GormSettingsRepository {
	return &GormSettingsRepository{db: db, defaults: defaults}
}

func (r *GormSettingsRepository) GetCurrent(ctx context.Context) (settings.DispatchWeights, error) {
	dto, found, err := r.latest(ctx)
	if err != nil {
		return settings.DispatchWeights{}, err
	}
	if found {
		return toDomain(dto)
	}

	seed := fromDomain(r.defaults)
	seed.Version = settings.InitialVersion
	if err = r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return settings.DispatchWeights{}, pgerrs.Wrap("seed dispatch weights", err)
	}

	dto, _, err = r.latest(ctx)
	if err != nil {
		return settings.DispatchWeights{}, err
	}
	return toDomain(dto)
}

// Save inserts weights as a new version. A version that is not above the
// stored maximum lost a race and is rejected.
func (r *GormSettingsRepository) Save(ctx context.Context, weights settings.DispatchWeights) error {
	if err := weights.Validate(); err != nil {
		return err
	}

	current, found, err := r.latest(ctx)
	if err != nil {
		return err
	}
	if found && weights.Version() <= current.Version {
		return errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("version %d is not newer than %d", weights.Version(), current.Version))
	}

	dto := fromDomain(weights)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsDuplicate(err) {
			return errs.NewVersionIsInvalidErrorWithCause("version",
				fmt.Errorf("version %d already exists", weights.Version()))
		}
		return pgerrs.Wrap("save dispatch weights", err)
	}
	return nil
}

func (r *GormSettingsRepository) latest(ctx context.Context) (DispatchWeightsDTO, bool, error) {
	var dto DispatchWeightsDTO
	err := r.db.WithContext(ctx).Order("version DESC").Limit(1).Take(&dto).Error
	switch {
	case pgerrs.IsNotFound(err):
		return DispatchWeightsDTO{}, false, nil
	case err != nil:
		return DispatchWeightsDTO{}, false, pgerrs.Wrap("get dispatch weights", err)
	}
	return dto, true, nil
}

func fromDomain(w settings.DispatchWeights) DispatchWeightsDTO {
	return DispatchWeightsDTO{
		Version:   w.Version(),
		Distance:  w.Distance(),
		Rating:    w.Rating(),
		Workload:  w.Workload(),
		Response:  w.Response(),
		CreatedAt: time.Now().UTC(),
	}
}

func toDomain(dto DispatchWeightsDTO) (settings.DispatchWeights, error) {
	return settings.RestoreDispatchWeights(dto.Distance, dto.Rating, dto.Workload, dto.Response, dto.Version)
}
