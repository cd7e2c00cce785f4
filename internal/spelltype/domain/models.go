package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type SpellType struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Description string       `gorm:"not null" json:"description"`
	CreatedAt   time.Time    `gorm:"not null" json:"createdAt"`
}

func (SpellType) TableName() string {
	return "spell_types"
}
