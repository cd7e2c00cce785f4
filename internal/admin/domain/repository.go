package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, admin *Admin) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Admin, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Admin, error)
}
