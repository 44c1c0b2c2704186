package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdentifierModel mirrors the 'identifiers' table, the global (source, value) namespace.
type IdentifierModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_identifiers_source_value"`
	Value  int64     `gorm:"not null;uniqueIndex:idx_identifiers_source_value"`
}

// TableName explicitly sets the table name for GORM.
func (IdentifierModel) TableName() string {
	return "identifiers"
}

// ContentModel mirrors the 'contents' table.
// Metadata uses a plain json column so key order survives storage.
type ContentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_contents_user_kind"`
	Kind      string         `gorm:"type:varchar(16);not null;index:idx_contents_user_kind"`
	Metadata  datatypes.JSON `gorm:"type:json"`
	ShowID    *uuid.UUID     `gorm:"type:uuid;index"`
	Watched   bool           `gorm:"not null;default:false"`
	Plays     int            `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Show *ContentModel `gorm:"foreignKey:ShowID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ContentModel) TableName() string {
	return "contents"
}

// ContentIdentifierModel mirrors the 'content_identifiers' join table.
type ContentIdentifierModel struct {
	ContentID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentifierID uuid.UUID `gorm:"type:uuid;primaryKey;index"`

	Content    *ContentModel    `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
	Identifier *IdentifierModel `gorm:"foreignKey:IdentifierID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ContentIdentifierModel) TableName() string {
	return "content_identifiers"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CredentialModel{},
		&IdentifierModel{},
		&ContentModel{},
		&ContentIdentifierModel{},
	}
}
