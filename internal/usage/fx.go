package usage

import (
	"github.com/spellworks/grimoire/internal/usage/repository"
	"github.com/spellworks/grimoire/internal/usage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("usage.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
