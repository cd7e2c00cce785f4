package spelltype

import (
	"github.com/spellworks/grimoire/internal/spelltype/repository"
	"github.com/spellworks/grimoire/internal/spelltype/service"
	"go.uber.org/fx"
)

var Module = fx.Module("spelltype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
