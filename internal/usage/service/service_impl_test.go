package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/spellworks/grimoire/internal/clock"
	"github.com/spellworks/grimoire/internal/usage/domain"
	"github.com/spellworks/grimoire/internal/usage/repository"
	"github.com/spellworks/grimoire/pkg/db/pagination"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Event{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	clk := clock.NewFakeClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clk,
		Repo:  repository.Provide(),
	})
	return svc, db, node, clk
}

func TestCountSinceBoundary(t *testing.T) {
	svc, db, node, clk := setupService(t)
	ctx := context.Background()

	userID := node.Generate()
	now := clk.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rows := []domain.Event{
		{ID: node.Generate(), UserID: userID, Endpoint: "/a", Timestamp: midnight.Add(-time.Second)},
		{ID: node.Generate(), UserID: userID, Endpoint: "/b", Timestamp: midnight},
		{ID: node.Generate(), UserID: userID, Endpoint: "/c", Timestamp: midnight.Add(time.Hour)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, err := svc.CountSince(ctx, userID, midnight)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	// The event exactly at midnight counts; the one just before does not.
	if count != 2 {
		t.Fatalf("expected 2 events since midnight, got %d", count)
	}
}

func TestCountSinceScopedToUser(t *testing.T) {
	svc, db, node, clk := setupService(t)
	ctx := context.Background()

	userA := node.Generate()
	userB := node.Generate()
	now := clk.Now()

	rows := []domain.Event{
		{ID: node.Generate(), UserID: userA, Endpoint: "/a", Timestamp: now},
		{ID: node.Generate(), UserID: userB, Endpoint: "/b", Timestamp: now},
		{ID: node.Generate(), UserID: userB, Endpoint: "/c", Timestamp: now},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, err := svc.CountSince(ctx, userA, now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 event for user A, got %d", count)
	}
}

func TestRecordStampsClockAndID(t *testing.T) {
	svc, db, _, clk := setupService(t)
	ctx := context.Background()

	node, _ := snowflake.NewNode(2)
	userID := node.Generate()

	event, err := svc.Record(ctx, userID, "/api/v1/spells?page=1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if event.ID == 0 {
		t.Fatal("expected generated id")
	}
	if !event.Timestamp.Equal(clk.Now()) {
		t.Fatalf("expected timestamp %v, got %v", clk.Now(), event.Timestamp)
	}
	if event.Endpoint != "/api/v1/spells?page=1" {
		t.Fatalf("unexpected endpoint %q", event.Endpoint)
	}

	var count int64
	if err := db.Model(&domain.Event{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	svc, _, node, clk := setupService(t)
	ctx := context.Background()

	userID := node.Generate()
	for i := 0; i < 5; i++ {
		if _, err := svc.Record(ctx, userID, fmt.Sprintf("/e/%d", i)); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		clk.Advance(time.Minute)
	}

	events, total, err := svc.ListByUser(ctx, userID, pagination.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(events) != 5 {
		t.Fatalf("expected 5 events, got %d (total %d)", len(events), total)
	}
	if events[0].Endpoint != "/e/4" {
		t.Fatalf("expected newest first, got %q", events[0].Endpoint)
	}

	limit := 2
	paged, total, err := svc.ListByUser(ctx, userID, pagination.Params{Limit: &limit})
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if total != 5 || len(paged) != 2 {
		t.Fatalf("expected 2 of 5, got %d of %d", len(paged), total)
	}
}
