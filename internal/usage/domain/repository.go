package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *Event) error
	CountSince(ctx context.Context, db *gorm.DB, userID snowflake.ID, since time.Time) (int64, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID, page pagination.Params) ([]Event, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID) (int64, error)
}
