package domain

import (
	"context"
	"errors"

	"github.com/spellworks/grimoire/internal/plan"
	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type CreateUserRequest struct {
	Name  string
	Email string
	Plan  plan.Plan
}

type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	FindByAPIKey(ctx context.Context, apiKey string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context, page pagination.Params) ([]User, int64, error)
}

var (
	ErrEmailTaken = errors.New("User with this email already exists")
	ErrNotFound   = errors.New("user not found")
)
