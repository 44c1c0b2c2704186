package model

import (
	"time"

	"github.com/google/uuid"
)

// CredentialModel mirrors the 'credentials' table. Every secret column carries its own unique index.
type CredentialModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccessSecret  string     `gorm:"type:varchar(128);uniqueIndex;not null"`
	RefreshSecret string     `gorm:"type:varchar(128);uniqueIndex;not null"`
	LinkingCode   string     `gorm:"type:varchar(16);uniqueIndex;not null"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
