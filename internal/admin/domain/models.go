package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Admin struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"uniqueIndex;not null" json:"email"`
	Password  string       `gorm:"not null" json:"-"`
	CreatedAt time.Time    `gorm:"not null" json:"createdAt"`
}
