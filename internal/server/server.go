package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spellworks/grimoire/internal/admin"
	admindomain "github.com/spellworks/grimoire/internal/admin/domain"
	"github.com/spellworks/grimoire/internal/auth/token"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/config"
	"github.com/spellworks/grimoire/internal/house"
	housedomain "github.com/spellworks/grimoire/internal/house/domain"
	"github.com/spellworks/grimoire/internal/observability"
	obslogger "github.com/spellworks/grimoire/internal/observability/logger"
	obsmetrics "github.com/spellworks/grimoire/internal/observability/metrics"
	obstracing "github.com/spellworks/grimoire/internal/observability/tracing"
	"github.com/spellworks/grimoire/internal/spell"
	spelldomain "github.com/spellworks/grimoire/internal/spell/domain"
	"github.com/spellworks/grimoire/internal/spelltype"
	spelltypedomain "github.com/spellworks/grimoire/internal/spelltype/domain"
	"github.com/spellworks/grimoire/internal/usage"
	usagedomain "github.com/spellworks/grimoire/internal/usage/domain"
	"github.com/spellworks/grimoire/internal/user"
	userdomain "github.com/spellworks/grimoire/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(provideTokenManager),
	user.Module,
	admin.Module,
	house.Module,
	spell.Module,
	spelltype.Module,
	usage.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(obslogger.GinMiddleware())
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func provideTokenManager(cfg config.Config) *token.Manager {
	return token.NewManager(cfg.JWTSecret)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	tokens       *token.Manager
	userSvc      userdomain.Service
	adminSvc     admindomain.Service
	houseSvc     housedomain.Service
	spellSvc     spelldomain.Service
	spellTypeSvc spelltypedomain.Service
	usageSvc     usagedomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Tokens       *token.Manager
	UserSvc      userdomain.Service
	AdminSvc     admindomain.Service
	HouseSvc     housedomain.Service
	SpellSvc     spelldomain.Service
	SpellTypeSvc spelltypedomain.Service
	UsageSvc     usagedomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		log:          p.Log.Named("server"),
		clock:        p.Clock,
		tokens:       p.Tokens,
		userSvc:      p.UserSvc,
		adminSvc:     p.AdminSvc,
		houseSvc:     p.HouseSvc,
		spellSvc:     p.SpellSvc,
		spellTypeSvc: p.SpellTypeSvc,
		usageSvc:     p.UsageSvc,
	}

	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/db-test", s.dbTest)

	v1 := s.engine.Group("/api/v1")

	userAuth := v1.Group("/user-auth")
	userAuth.POST("/create", s.CreateUser)

	adminGroup := v1.Group("/admin")
	adminGroup.POST("/create", s.CreateAdmin)
	adminGroup.POST("/login", s.AdminLogin)

	protected := adminGroup.Group("", s.AdminRequired())
	protected.GET("/get-users", s.GetUsers)
	protected.GET("/get-user/:id", s.GetUserDetail)

	spellTypes := protected.Group("/spell-type")
	spellTypes.GET("", s.ListSpellTypes)
	spellTypes.POST("/create", s.CreateSpellType)
	spellTypes.POST("/edit/:id", s.EditSpellType)
	spellTypes.DELETE("/delete/:id", s.DeleteSpellType)
	spellTypes.GET("/:id", s.GetSpellTypeByID)

	spells := protected.Group("/spell")
	spells.GET("", s.ListSpells)
	spells.POST("/create", s.CreateSpell)
	spells.POST("/edit/:id", s.EditSpell)
	spells.DELETE("/delete/:id", s.DeleteSpell)
	spells.GET("/:id", s.GetSpellByID)

	houses := protected.Group("/house")
	houses.GET("", s.ListHouses)
	houses.POST("/create", s.CreateHouse)
	houses.POST("/edit/:id", s.EditHouse)
	houses.DELETE("/delete/:id", s.DeleteHouse)
	houses.GET("/:id", s.GetHouseByID)

	// Metered read-only catalog.
	metered := s.APIKeyRequired()
	quota := s.QuotaRequired()

	catalog := v1.Group("/spells", metered, quota)
	catalog.GET("", s.ListSpells)
	catalog.GET("/types", s.ListSpellTypes)
	catalog.GET("/types/:id", s.GetSpellTypeByID)
	catalog.GET("/:id", s.GetSpellByID)

	houseCatalog := v1.Group("/house", metered, quota)
	houseCatalog.GET("", s.ListHouses)
}

func (s *Server) dbTest(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		s.log.Error("db ping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
