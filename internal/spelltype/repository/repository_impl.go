package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/spelltype/domain"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, spellType *domain.SpellType) error {
	return db.WithContext(ctx).Create(spellType).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SpellType, error) {
	return r.findOne(ctx, db, "id = ?", id)
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.SpellType, error) {
	return r.findOne(ctx, db, "name = ?", name)
}

func (r *repo) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*domain.SpellType, error) {
	var types []domain.SpellType
	err := db.WithContext(ctx).Where(query, arg).Limit(1).Find(&types).Error
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, nil
	}
	return &types[0], nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Params) ([]domain.SpellType, error) {
	var types []domain.SpellType
	stmt := page.Apply(db.WithContext(ctx).Model(&domain.SpellType{}))
	if err := stmt.Order("created_at desc").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.SpellType{}).Count(&total).Error
	return total, err
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return db.WithContext(ctx).Model(&domain.SpellType{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SpellType{}).Error
}
