package user

import (
	"github.com/spellworks/grimoire/internal/user/repository"
	"github.com/spellworks/grimoire/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
