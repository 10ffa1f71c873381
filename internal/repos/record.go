package repos

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/types"
)

type RecordRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (*types.Record, error)
	Exists(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (bool, error)
	LegacyEntryID(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (int64, error)
}

type recordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecordRepo(db *gorm.DB, baseLog *logger.Logger) RecordRepo {
	repoLog := baseLog.With("repo", "RecordRepo")
	return &recordRepo{db: db, log: repoLog}
}

func (rr *recordRepo) GetByID(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (*types.Record, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var record types.Record
	if err := transaction.WithContext(ctx).
		Where("id = ?", recordID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (rr *recordRepo) Exists(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Record{}).
		Where("id = ?", recordID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rr *recordRepo) LegacyEntryID(ctx context.Context, tx *gorm.DB, recordID uuid.UUID) (int64, error) {
	record, err := rr.GetByID(ctx, tx, recordID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return record.LegacyEntryID, nil
}
