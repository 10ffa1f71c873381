package repos

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/types"
)

type AttributeRepo interface {
	Get(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, metaKey string) (string, bool, error)
	Upsert(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, metaKey, metaValue string) error
}

type attributeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttributeRepo(db *gorm.DB, baseLog *logger.Logger) AttributeRepo {
	repoLog := baseLog.With("repo", "AttributeRepo")
	return &attributeRepo{db: db, log: repoLog}
}

func (ar *attributeRepo) Get(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, metaKey string) (string, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	var attr types.RecordAttribute
	if err := transaction.WithContext(ctx).
		Where("record_id = ? AND meta_key = ?", recordID, metaKey).
		First(&attr).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return attr.MetaValue, true, nil
}

func (ar *attributeRepo) Upsert(ctx context.Context, tx *gorm.DB, recordID uuid.UUID, metaKey, metaValue string) error {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}

	attr := types.RecordAttribute{
		RecordID:  recordID,
		MetaKey:   metaKey,
		MetaValue: metaValue,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_id"}, {Name: "meta_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"meta_value", "updated_at"}),
		}).
		Create(&attr).Error
}
