package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/usage/domain"
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
		log:   p.Log.Named("usage.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) CountSince(ctx context.Context, userID snowflake.ID, since time.Time) (int64, error) {
	return s.repo.CountSince(ctx, s.db, userID, since)
}

func (s *Service) Record(ctx context.Context, userID snowflake.ID, endpoint string) (domain.Event, error) {
	event := domain.Event{
		ID:        s.genID.Generate(),
		UserID:    userID,
		Endpoint:  endpoint,
		Timestamp: s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *Service) ListByUser(ctx context.Context, userID snowflake.ID, page pagination.Params) ([]domain.Event, int64, error) {
	events, err := s.repo.ListByUser(ctx, s.db, userID, page)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(ctx, s.db, userID)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
