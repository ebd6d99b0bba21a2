// Package ledgerrepo stores the append-only courier ledger.
package ledgerrepo

import (
	"context"
	"time"

	"courierhub/internal/adapters/out/postgres/pgerrs"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/payout"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryDTO is one ledger row. order_id is unique, which is what makes a
// delivery credit idempotent; debits carry no order and NULLs never collide.
type EntryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID  `gorm:"type:uuid;not null;index:idx_ledger_courier_created,priority:1"`
	OrderID   *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Kind      string     `gorm:"type:varchar(16);not null"`
	Amount    int64      `gorm:"type:bigint;not null"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;index:idx_ledger_courier_created,priority:2"`
}

func (EntryDTO) TableName() string {
	return "courier_ledger"
}

type GormLedgerRepository struct {
	db *gorm.DB
}

func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

func (r *GormLedgerRepository) Append(ctx context.Context, entry *payout.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsDuplicate(err) && entry.Kind() == payout.Credit {
			return payout.ErrAlreadyCredited
		}
		return pgerrs.Wrap("append ledger entry", err)
	}
	return nil
}

func (r *GormLedgerRepository) ListByCourier(ctx context.Context, courierID kernel.UUID, limit int) ([]*payout.Entry, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var dtos []EntryDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, pgerrs.Wrap("list ledger entries", err)
	}

	entries := make([]*payout.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func fromDomain(e *payout.Entry) EntryDTO {
	var orderID *uuid.UUID
	if id := e.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}
	return EntryDTO{
		ID:        e.ID().Bytes(),
		CourierID: e.CourierID().Bytes(),
		OrderID:   orderID,
		Kind:      string(e.Kind()),
		Amount:    e.Amount(),
		CreatedAt: e.CreatedAt(),
	}
}

func toDomain(dto EntryDTO) (*payout.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, oErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if oErr != nil {
			return nil, oErr
		}
		orderID = &oID
	}
	return payout.RestoreEntry(id, courierID, orderID, payout.Kind(dto.Kind), dto.Amount, dto.CreatedAt.UTC())
}
