package dto

import (
	"strings"

	"studio/internal/domains/auth/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required,max=128"`
}

func (r *LoginRequest) Trim() {
	r.Username = strings.TrimSpace(r.Username)
}

// LoginResult is a fresh session and the signed token that carries it.
type LoginResult struct {
	Session *model.Session
	Token   string
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
