package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/pkg/db/pagination"
)

type Service interface {
	// CountSince counts a user's events with timestamp >= since.
	CountSince(ctx context.Context, userID snowflake.ID, since time.Time) (int64, error)
	// Record appends one event for an admitted metered request.
	Record(ctx context.Context, userID snowflake.ID, endpoint string) (Event, error)
	// ListByUser returns a user's events newest first, with the total count.
	ListByUser(ctx context.Context, userID snowflake.ID, page pagination.Params) ([]Event, int64, error)
}
