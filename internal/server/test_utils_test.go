package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	admindomain "github.com/spellworks/grimoire/internal/admin/domain"
	adminrepository "github.com/spellworks/grimoire/internal/admin/repository"
	adminservice "github.com/spellworks/grimoire/internal/admin/service"
	"github.com/spellworks/grimoire/internal/auth/token"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/config"
	housedomain "github.com/spellworks/grimoire/internal/house/domain"
	houserepository "github.com/spellworks/grimoire/internal/house/repository"
	houseservice "github.com/spellworks/grimoire/internal/house/service"
	"github.com/spellworks/grimoire/internal/plan"
	spelldomain "github.com/spellworks/grimoire/internal/spell/domain"
	spellrepository "github.com/spellworks/grimoire/internal/spell/repository"
	spellservice "github.com/spellworks/grimoire/internal/spell/service"
	spelltypedomain "github.com/spellworks/grimoire/internal/spelltype/domain"
	spelltyperepository "github.com/spellworks/grimoire/internal/spelltype/repository"
	spelltypeservice "github.com/spellworks/grimoire/internal/spelltype/service"
	usagedomain "github.com/spellworks/grimoire/internal/usage/domain"
	usagerepository "github.com/spellworks/grimoire/internal/usage/repository"
	usageservice "github.com/spellworks/grimoire/internal/usage/service"
	userdomain "github.com/spellworks/grimoire/internal/user/domain"
	userrepository "github.com/spellworks/grimoire/internal/user/repository"
	userservice "github.com/spellworks/grimoire/internal/user/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	srv   *Server
	db    *gorm.DB
	clock *clock.FakeClock
	node  *snowflake.Node
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userdomain.User{},
		&admindomain.Admin{},
		&housedomain.House{},
		&spelltypedomain.SpellType{},
		&spelldomain.Spell{},
		&usagedomain.Event{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	tokens := token.NewManager(testJWTSecret)

	userSvc := userservice.New(userservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: userrepository.Provide(),
	})
	adminSvc := adminservice.New(adminservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: adminrepository.Provide(), Tokens: tokens,
	})
	houseSvc := houseservice.New(houseservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: houserepository.Provide(),
	})
	spellSvc := spellservice.New(spellservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: spellrepository.Provide(),
	})
	spellTypeSvc := spelltypeservice.New(spelltypeservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: spelltyperepository.Provide(),
	})
	usageSvc := usageservice.New(usageservice.Params{
		DB: db, Log: log, GenID: node, Clock: clk, Repo: usagerepository.Provide(),
	})

	srv := NewServer(ServerParams{
		Gin:          gin.New(),
		Cfg:          config.Config{Port: "8080", JWTSecret: testJWTSecret},
		DB:           db,
		Log:          log,
		Clock:        clk,
		Tokens:       tokens,
		UserSvc:      userSvc,
		AdminSvc:     adminSvc,
		HouseSvc:     houseSvc,
		SpellSvc:     spellSvc,
		SpellTypeSvc: spellTypeSvc,
		UsageSvc:     usageSvc,
	})

	return &testEnv{srv: srv, db: db, clock: clk, node: node}
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp := httptest.NewRecorder()
	e.srv.Engine().ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

// adminToken registers an admin through the API and returns a valid Bearer
// token for it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	create := e.do(t, http.MethodPost, "/api/v1/admin/create",
		`{"email":"admin@example.com","password":"s3cret"}`, nil)
	if create.Code != http.StatusCreated {
		t.Fatalf("create admin: status %d, body %s", create.Code, create.Body.String())
	}

	login := e.do(t, http.MethodPost, "/api/v1/admin/login",
		`{"email":"admin@example.com","password":"s3cret"}`, nil)
	if login.Code != http.StatusOK {
		t.Fatalf("admin login: status %d, body %s", login.Code, login.Body.String())
	}

	body := decodeBody(t, login)
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("login response missing token")
	}
	return tok
}

func (e *testEnv) adminHeaders(t *testing.T) map[string]string {
	return map[string]string{"Authorization": "Bearer " + e.adminToken(t)}
}

// seedUser inserts a user row directly and returns it.
func (e *testEnv) seedUser(t *testing.T, p string, apiKey string) userdomain.User {
	t.Helper()
	u := userdomain.User{
		ID:        e.node.Generate(),
		Name:      "Rowan",
		Email:     fmt.Sprintf("%s@example.com", apiKey),
		Plan:      planFromString(t, p),
		APIKey:    apiKey,
		CreatedAt: e.clock.Now(),
	}
	if err := e.db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func planFromString(t *testing.T, raw string) plan.Plan {
	t.Helper()
	p, ok := plan.Parse(raw)
	if !ok {
		t.Fatalf("unknown plan %q", raw)
	}
	return p
}
