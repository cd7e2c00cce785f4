package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Spell struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"uniqueIndex;not null" json:"name"`
	Description string       `gorm:"not null" json:"description"`
	TypeID      snowflake.ID `gorm:"column:type_id;index;not null" json:"typeId"`
	CreatedAt   time.Time    `gorm:"not null" json:"createdAt"`
}

// TypeRef is the embedded spell-type summary returned by get-by-id.
type TypeRef struct {
	Name string `json:"name"`
}

// SpellDetail is a spell with its type joined in.
type SpellDetail struct {
	Spell
	Type *TypeRef `json:"type"`
}
