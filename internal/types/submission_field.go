package types

import (
	"time"

	"gorm.io/gorm"
)

// SubmissionField is one field value of a legacy form-submission entry.
// Entries and fields are addressed by the numeric IDs the external form
// system assigned; the engine only ever touches them through the
// submission store adapter.
type SubmissionField struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	EntryID   int64          `gorm:"column:entry_id;not null;index:idx_submission_field,unique,priority:1" json:"entry_id"`
	FieldID   int64          `gorm:"column:field_id;not null;index:idx_submission_field,unique,priority:2" json:"field_id"`
	Value     string         `gorm:"column:value;type:text" json:"value"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SubmissionField) TableName() string { return "submission_field" }
