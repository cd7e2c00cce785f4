package domain

import (
	"context"
	"errors"

	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type CreateSpellTypeRequest struct {
	Name        string
	Description string
}

// UpdateSpellTypeRequest is a sparse patch: nil means the field was omitted.
// Empty strings are never applied.
type UpdateSpellTypeRequest struct {
	Name        *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateSpellTypeRequest) (SpellType, error)
	List(ctx context.Context, page pagination.Params) ([]SpellType, int64, error)
	GetByID(ctx context.Context, id string) (SpellType, error)
	Edit(ctx context.Context, id string, req UpdateSpellTypeRequest) (SpellType, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNameTaken = errors.New("Spell Type with this name already exist")
	ErrNotFound  = errors.New("spell type not found")
)
