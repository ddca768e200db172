package user

import "urbanfix/models"

// AuthResult carries the sanitized user record plus a fresh session token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts and issues identity tokens.
type UserService interface {
	Register(name, email, password string) (*AuthResult, error)
	Authenticate(email, password string) (*AuthResult, error)
	GetByID(id string) (*models.User, error)
}
