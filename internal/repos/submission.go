package repos

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/types"
)

type SubmissionRepo interface {
	Get(ctx context.Context, tx *gorm.DB, entryID, fieldID int64) (string, bool, error)
	Upsert(ctx context.Context, tx *gorm.DB, entryID, fieldID int64, value string) error
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (sr *submissionRepo) Get(ctx context.Context, tx *gorm.DB, entryID, fieldID int64) (string, bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var field types.SubmissionField
	if err := transaction.WithContext(ctx).
		Where("entry_id = ? AND field_id = ?", entryID, fieldID).
		First(&field).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return field.Value, true, nil
}

func (sr *submissionRepo) Upsert(ctx context.Context, tx *gorm.DB, entryID, fieldID int64, value string) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	field := types.SubmissionField{
		EntryID: entryID,
		FieldID: fieldID,
		Value:   value,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_id"}, {Name: "field_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&field).Error
}
