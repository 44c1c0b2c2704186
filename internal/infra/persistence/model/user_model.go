package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
// It is an exported type so it can be shared with the migration code in other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Credentials []CredentialModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Contents    []ContentModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
