package domain

import (
	"context"
	"errors"

	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type CreateSpellRequest struct {
	Name        string
	Description string
	TypeID      string
}

// UpdateSpellRequest is a sparse patch: nil means the field was omitted.
// Empty strings are never applied.
type UpdateSpellRequest struct {
	Name        *string
	Description *string
	TypeID      *string
}

type Service interface {
	Create(ctx context.Context, req CreateSpellRequest) (Spell, error)
	List(ctx context.Context, page pagination.Params) ([]Spell, int64, error)
	GetByID(ctx context.Context, id string) (SpellDetail, error)
	Edit(ctx context.Context, id string, req UpdateSpellRequest) (Spell, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrNameTaken     = errors.New("Spell with this name already exist")
	ErrNotFound      = errors.New("spell not found")
	ErrInvalidTypeID = errors.New("invalid spell type id")
)
