package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHost       Role = "HOST"
	RoleCustomer   Role = "CUSTOMER"
	RoleDoctor     Role = "DOCTOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleHost, RoleCustomer, RoleDoctor:
		return true
	}
	return false
}

// IsAdmin reports whether the role carries moderation privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
	StatusBlocked  UserStatus = "BLOCKED"
	StatusPending  UserStatus = "PENDING"
)

func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlocked, StatusPending:
		return true
	}
	return false
}

// User is the identity record. Its role-specific profile lives in a
// separate table (see profile_model.go); exactly one profile row exists
// per user and its type matches Role.
type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	ContactNumber      string     `gorm:"size:30;uniqueIndex;not null" json:"contactNumber"`
	Password           string     `gorm:"size:255;not null" json:"-"`
	Role               Role       `gorm:"size:20;not null;index" json:"role"`
	Status             UserStatus `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	NeedPasswordChange bool       `gorm:"default:false" json:"needPasswordChange"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
