package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	PersonName  string    `gorm:"type:varchar(100)"`
	PhoneNumber string    `gorm:"type:varchar(30)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Roles           []UserRoleModel       `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	Name      string `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'user_roles' join table.
type UserRoleModel struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleName string    `gorm:"type:varchar(50);primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "user_roles"
}
