package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role represents the two gated areas of the site.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleStudent Role = "STUDENT"
)

// LoginRequest holds credentials for authenticating a visitor.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and the resolved identity.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	Role        Role         `json:"role"`
	Student     *StudentUser `json:"student,omitempty"`
	IssuedAt    time.Time    `json:"issued_at"`
}

// Session is the persisted session snapshot: it survives process restarts the
// way the original single-operator session survived a page reload.
type Session struct {
	Role    Role         `json:"role"`
	Student *StudentUser `json:"student,omitempty"`
}

// JWTClaims represents the JWT payload for access tokens. The token gates
// routes only; it carries no security semantics beyond role and identity.
type JWTClaims struct {
	Role      Role   `json:"role"`
	StudentID string `json:"student_id,omitempty"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
