package migration

import (
	admindomain "github.com/spellworks/grimoire/internal/admin/domain"
	housedomain "github.com/spellworks/grimoire/internal/house/domain"
	spelldomain "github.com/spellworks/grimoire/internal/spell/domain"
	spelltypedomain "github.com/spellworks/grimoire/internal/spelltype/domain"
	usagedomain "github.com/spellworks/grimoire/internal/usage/domain"
	userdomain "github.com/spellworks/grimoire/internal/user/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run applies the schema at startup.
func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&userdomain.User{},
		&admindomain.Admin{},
		&housedomain.House{},
		&spelltypedomain.SpellType{},
		&spelldomain.Spell{},
		&usagedomain.Event{},
	)
	if err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}
