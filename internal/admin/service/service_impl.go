package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/admin/domain"
	"github.com/spellworks/grimoire/internal/auth/password"
	"github.com/spellworks/grimoire/internal/auth/token"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Tokens *token.Manager
	Repo   domain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	clock  clock.Clock
	tokens *token.Manager
	repo   domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("admin.service"),
		genID:  p.GenID,
		clock:  p.Clock,
		tokens: p.Tokens,
		repo:   p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAdminRequest) (domain.Admin, error) {
	existing, err := s.repo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		return domain.Admin{}, err
	}
	if existing != nil {
		return domain.Admin{}, domain.ErrEmailTaken
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return domain.Admin{}, err
	}

	admin := domain.Admin{
		ID:        s.genID.Generate(),
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &admin); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Admin{}, domain.ErrEmailTaken
		}
		return domain.Admin{}, err
	}

	s.log.Info("admin created", zap.String("admin_id", admin.ID.String()))
	return admin, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResult, error) {
	admin, err := s.repo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if admin == nil {
		return domain.LoginResult{}, domain.ErrInvalidEmail
	}

	if !password.Verify(req.Password, admin.Password) {
		return domain.LoginResult{}, domain.ErrInvalidPassword
	}

	signed, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{Admin: *admin, Token: signed}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Admin, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.Admin{}, domain.ErrNotFound
	}

	admin, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Admin{}, err
	}
	if admin == nil {
		return domain.Admin{}, domain.ErrNotFound
	}
	return *admin, nil
}
