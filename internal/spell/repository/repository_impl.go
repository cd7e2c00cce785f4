package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/spell/domain"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, spell *domain.Spell) error {
	return db.WithContext(ctx).Create(spell).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Spell, error) {
	return r.findOne(ctx, db, "id = ?", id)
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Spell, error) {
	return r.findOne(ctx, db, "name = ?", name)
}

func (r *repo) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*domain.Spell, error) {
	var spells []domain.Spell
	err := db.WithContext(ctx).Where(query, arg).Limit(1).Find(&spells).Error
	if err != nil {
		return nil, err
	}
	if len(spells) == 0 {
		return nil, nil
	}
	return &spells[0], nil
}

func (r *repo) FindDetailByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.SpellDetail, error) {
	var row struct {
		ID          snowflake.ID `gorm:"column:id"`
		Name        string       `gorm:"column:name"`
		Description string       `gorm:"column:description"`
		TypeID      snowflake.ID `gorm:"column:type_id"`
		CreatedAt   time.Time    `gorm:"column:created_at"`
		TypeName    *string      `gorm:"column:type_name"`
	}

	err := db.WithContext(ctx).Raw(
		`SELECT s.id, s.name, s.description, s.type_id, s.created_at, t.name AS type_name
		 FROM spells s
		 LEFT JOIN spell_types t ON t.id = s.type_id
		 WHERE s.id = ?`,
		id,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}

	detail := &domain.SpellDetail{
		Spell: domain.Spell{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			TypeID:      row.TypeID,
			CreatedAt:   row.CreatedAt,
		},
	}
	if row.TypeName != nil {
		detail.Type = &domain.TypeRef{Name: *row.TypeName}
	}
	return detail, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, page pagination.Params) ([]domain.Spell, error) {
	var spells []domain.Spell
	stmt := page.Apply(db.WithContext(ctx).Model(&domain.Spell{}))
	if err := stmt.Order("created_at desc").Find(&spells).Error; err != nil {
		return nil, err
	}
	return spells, nil
}

func (r *repo) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Spell{}).Count(&total).Error
	return total, err
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	return db.WithContext(ctx).Model(&domain.Spell{}).Where("id = ?", id).Updates(fields).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Spell{}).Error
}
