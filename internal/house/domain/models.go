package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type House struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"uniqueIndex;not null" json:"name"`
	Logo      string       `gorm:"not null" json:"logo"`
	Creator   string       `gorm:"not null" json:"creator"`
	CreatedAt time.Time    `gorm:"not null" json:"createdAt"`
}
