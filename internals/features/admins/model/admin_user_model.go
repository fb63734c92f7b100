package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserModel struct {
	AdminID        uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminEmail     string    `gorm:"column:admin_email;type:varchar(120);not null;uniqueIndex" json:"admin_email"`
	AdminPassword  string    `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminFullName  string    `gorm:"column:admin_full_name;type:varchar(120)" json:"admin_full_name"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
