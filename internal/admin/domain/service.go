package domain

import (
	"context"
	"errors"
)

type CreateAdminRequest struct {
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	Admin Admin
	Token string
}

type Service interface {
	Create(ctx context.Context, req CreateAdminRequest) (Admin, error)
	Login(ctx context.Context, req LoginRequest) (LoginResult, error)
	GetByID(ctx context.Context, id string) (Admin, error)
}

var (
	ErrEmailTaken      = errors.New("User with this email already exists")
	ErrInvalidEmail    = errors.New("Invalid email")
	ErrInvalidPassword = errors.New("Invalid password")
	ErrNotFound        = errors.New("admin not found")
)
