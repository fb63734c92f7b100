package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel holds access tokens revoked by logout until they
// would have expired anyway; a scheduler prunes old rows.
type TokenBlacklistModel struct {
	BlacklistID uuid.UUID      `gorm:"column:blacklist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blacklist_id"`
	Token       string         `gorm:"column:token;type:text;not null;uniqueIndex" json:"token"`
	ExpiredAt   time.Time      `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
