package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/house/domain"
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
		log:   p.Log.Named("house.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateHouseRequest) (domain.House, error) {
	existing, err := s.repo.FindByName(ctx, s.db, req.Name)
	if err != nil {
		return domain.House{}, err
	}
	if existing != nil {
		return domain.House{}, domain.ErrNameTaken
	}

	house := domain.House{
		ID:        s.genID.Generate(),
		Name:      req.Name,
		Logo:      req.Logo,
		Creator:   req.Creator,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &house); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.House{}, domain.ErrNameTaken
		}
		return domain.House{}, err
	}

	return house, nil
}

func (s *Service) List(ctx context.Context, page pagination.Params) ([]domain.House, int64, error) {
	houses, err := s.repo.List(ctx, s.db, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, s.db)
	if err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.House, error) {
	parsed, ok := parseID(id)
	if !ok {
		return domain.House{}, domain.ErrNotFound
	}

	house, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.House{}, err
	}
	if house == nil {
		return domain.House{}, domain.ErrNotFound
	}
	return *house, nil
}

func (s *Service) Edit(ctx context.Context, id string, req domain.UpdateHouseRequest) (domain.House, error) {
	parsed, ok := parseID(id)
	if !ok {
		return domain.House{}, domain.ErrNotFound
	}

	existing, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.House{}, err
	}
	if existing == nil {
		return domain.House{}, domain.ErrNotFound
	}

	// Sparse patch: the unique name only when supplied and changed, the
	// rest only when non-empty.
	updates := map[string]any{}
	if req.Name != nil && *req.Name != "" && *req.Name != existing.Name {
		updates["name"] = *req.Name
	}
	if req.Logo != nil && *req.Logo != "" {
		updates["logo"] = *req.Logo
	}
	if req.Creator != nil && *req.Creator != "" {
		updates["creator"] = *req.Creator
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, s.db, parsed, updates); err != nil {
			return domain.House{}, err
		}
	}

	updated, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.House{}, err
	}
	if updated == nil {
		return domain.House{}, domain.ErrNotFound
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
