package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxUsernameLength bounds administrator usernames.
const MaxUsernameLength = 120

// Admin is an operator allowed to manage site content.
type Admin struct {
	ID           primitive.ObjectID `json:"_id"`
	Username     string             `json:"username"`
	PasswordHash string             `json:"-"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// NewAdmin builds an administrator record with server-assigned identity.
func NewAdmin(username, passwordHash string) *Admin {
	ts := now()
	return &Admin{
		ID:           primitive.NewObjectID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

// Identity is the decoded bearer token attached to an authenticated request.
type Identity struct {
	AdminID   string    `json:"adminId"`
	Username  string    `json:"username"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     *Admin    `json:"user"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordInput is the change-password request body.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}
