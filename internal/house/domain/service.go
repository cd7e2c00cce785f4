package domain

import (
	"context"
	"errors"

	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type CreateHouseRequest struct {
	Name    string
	Logo    string
	Creator string
}

// UpdateHouseRequest is a sparse patch: nil means the field was omitted.
// Empty strings are never applied.
type UpdateHouseRequest struct {
	Name    *string
	Logo    *string
	Creator *string
}

type Service interface {
	Create(ctx context.Context, req CreateHouseRequest) (House, error)
	List(ctx context.Context, page pagination.Params) ([]House, int64, error)
	GetByID(ctx context.Context, id string) (House, error)
	Edit(ctx context.Context, id string, req UpdateHouseRequest) (House, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNameTaken = errors.New("House with this name already exist")
	ErrNotFound  = errors.New("house not found")
)
