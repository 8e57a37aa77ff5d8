package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that can sign in; admins are platform-wide, customers manage one organization
type User struct {
	BaseModel
	Username       string        `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email          string        `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string        `json:"-" gorm:"not null;size:255"`
	FirstName      string        `json:"first_name" gorm:"size:150"`
	LastName       string        `json:"last_name" gorm:"size:150"`
	Role           UserRole      `json:"role" gorm:"type:varchar(20);not null;index"`
	OrganizationID *uuid.UUID    `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Phone          string        `json:"phone" gorm:"size:17"`
	IsVerified     bool          `json:"is_verified" gorm:"not null"`
	IsActive       bool          `json:"is_active" gorm:"not null"`
	LastLogin      *time.Time    `json:"last_login,omitempty"`

	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeSave keeps emails case-insensitively unique
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserProfile holds the security-awareness attributes of a user
type UserProfile struct {
	BaseModel
	UserID           uuid.UUID     `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Department       string        `json:"department" gorm:"size:100"`
	JobTitle         string        `json:"job_title" gorm:"size:100"`
	SecurityLevel    SecurityLevel `json:"security_level" gorm:"type:varchar(20);not null"`
	LastTrainingDate *time.Time    `json:"last_training_date,omitempty"`
}

// TableName returns the table name for UserProfile
func (UserProfile) TableName() string {
	return "user_profiles"
}

// RevokedToken blacklists a refresh token until it would have expired
type RevokedToken struct {
	BaseModel
	JTI       string    `json:"jti" gorm:"uniqueIndex;not null;size:64"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
}

// TableName returns the table name for RevokedToken
func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
