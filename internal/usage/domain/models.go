package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Event is one accepted metered request. Rows are append-only: the system
// never mutates or deletes them.
type Event struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID `gorm:"column:user_id;index;not null" json:"userId"`
	Endpoint  string       `gorm:"not null" json:"endpoint"`
	Timestamp time.Time    `gorm:"index;not null" json:"timestamp"`
}

func (Event) TableName() string {
	return "usage_events"
}
