package house

import (
	"github.com/spellworks/grimoire/internal/house/repository"
	"github.com/spellworks/grimoire/internal/house/service"
	"go.uber.org/fx"
)

var Module = fx.Module("house.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
