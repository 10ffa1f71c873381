package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordAttribute is one key/value attribute of a record (the current
// per-entity attribute store). One row per record+key.
type RecordAttribute struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_record_attribute,unique,priority:1" json:"record_id"`
	Record    *Record        `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordID;references:ID" json:"record,omitempty"`
	MetaKey   string         `gorm:"column:meta_key;not null;index:idx_record_attribute,unique,priority:2" json:"meta_key"`
	MetaValue string         `gorm:"column:meta_value;type:text" json:"meta_value"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (RecordAttribute) TableName() string { return "record_attribute" }
