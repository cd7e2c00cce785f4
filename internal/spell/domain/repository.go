package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, spell *Spell) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Spell, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Spell, error)
	// FindDetailByID joins in the spell type name.
	FindDetailByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SpellDetail, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Params) ([]Spell, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
