package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/spell/domain"
	"github.com/spellworks/grimoire/pkg/db"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("spell.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateSpellRequest) (domain.Spell, error) {
	existing, err := s.repo.FindByName(ctx, s.db, req.Name)
	if err != nil {
		return domain.Spell{}, err
	}
	if existing != nil {
		return domain.Spell{}, domain.ErrNameTaken
	}

	// Referential integrity of type_id is left to the storage layer.
	typeID, ok := parseID(req.TypeID)
	if !ok {
		return domain.Spell{}, domain.ErrInvalidTypeID
	}

	spell := domain.Spell{
		ID:          s.genID.Generate(),
		Name:        req.Name,
		Description: req.Description,
		TypeID:      typeID,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &spell); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Spell{}, domain.ErrNameTaken
		}
		return domain.Spell{}, err
	}

	return spell, nil
}

func (s *Service) List(ctx context.Context, page pagination.Params) ([]domain.Spell, int64, error) {
	spells, err := s.repo.List(ctx, s.db, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, s.db)
	if err != nil {
		return nil, 0, err
	}
	return spells, total, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.SpellDetail, error) {
	parsed, ok := parseID(id)
	if !ok {
		return domain.SpellDetail{}, domain.ErrNotFound
	}

	detail, err := s.repo.FindDetailByID(ctx, s.db, parsed)
	if err != nil {
		return domain.SpellDetail{}, err
	}
	if detail == nil {
		return domain.SpellDetail{}, domain.ErrNotFound
	}
	return *detail, nil
}

func (s *Service) Edit(ctx context.Context, id string, req domain.UpdateSpellRequest) (domain.Spell, error) {
	parsed, ok := parseID(id)
	if !ok {
		return domain.Spell{}, domain.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Spell{}, err
	}
	if existing == nil {
		return domain.Spell{}, domain.ErrNotFound
	}

	updates := map[string]any{}
	if req.Name != nil && *req.Name != "" && *req.Name != existing.Name {
		updates["name"] = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		updates["description"] = *req.Description
	}
	if req.TypeID != nil && *req.TypeID != "" {
		typeID, ok := parseID(*req.TypeID)
		if !ok {
			return domain.Spell{}, domain.ErrInvalidTypeID
		}
		updates["type_id"] = typeID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, s.db, parsed, updates); err != nil {
			return domain.Spell{}, err
		}
	}

	updated, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Spell{}, err
	}
	if updated == nil {
		return domain.Spell{}, domain.ErrNotFound
	}
	return *updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, ok := parseID(id)
	if !ok {
		return domain.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, parsed)
}

func parseID(value string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
