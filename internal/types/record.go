package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is a guest profile content entity. The engine never creates or
// deletes records, it only reads and writes named attributes against them.
type Record struct {
	ID    uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title string    `gorm:"column:title" json:"title"`
	// LegacyEntryID links the record to its original form-submission entry.
	// Zero means the record was created after the legacy intake was retired.
	LegacyEntryID int64          `gorm:"column:legacy_entry_id;index" json:"legacy_entry_id,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Record) TableName() string { return "record" }
