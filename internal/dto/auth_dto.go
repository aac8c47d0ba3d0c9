package dto

import "nexora.lk/campuscore/internal/model"

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`

	// SessionTerminated is set when an elevated account logged in while a
	// previous session was still live; that session is now orphaned.
	SessionTerminated bool `json:"session_terminated"`

	Account *model.Account `json:"account"`
}
