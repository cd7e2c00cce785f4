package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/usage/domain"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *domain.Event) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *repo) CountSince(ctx context.Context, db *gorm.DB, userID snowflake.ID, since time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Event{}).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Count(&total).Error
	return total, err
}

func (r *repo) ListByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID, page pagination.Params) ([]domain.Event, error) {
	var events []domain.Event
	stmt := page.Apply(db.WithContext(ctx).Model(&domain.Event{}).Where("user_id = ?", userID))
	if err := stmt.Order("timestamp desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repo) CountByUser(ctx context.Context, db *gorm.DB, userID snowflake.ID) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Event{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
