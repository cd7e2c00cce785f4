package spell

import (
	"github.com/spellworks/grimoire/internal/spell/repository"
	"github.com/spellworks/grimoire/internal/spell/service"
	"go.uber.org/fx"
)

var Module = fx.Module("spell.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
