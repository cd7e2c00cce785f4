package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, user *User) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindByAPIKey(ctx context.Context, db *gorm.DB, apiKey string) (*User, error)
	List(ctx context.Context, db *gorm.DB, page pagination.Params) ([]User, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
