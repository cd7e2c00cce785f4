package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spellworks/grimoire/internal/plan"
)

type User struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Email     string       `gorm:"uniqueIndex;not null" json:"email"`
	Plan      plan.Plan    `gorm:"type:varchar(16);not null" json:"plan"`
	APIKey    string       `gorm:"column:api_key;uniqueIndex;not null" json:"apiKey"`
	CreatedAt time.Time    `gorm:"not null" json:"createdAt"`
}
