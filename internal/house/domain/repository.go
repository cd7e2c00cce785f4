package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, house *House) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*House, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*House, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Params) ([]House, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
