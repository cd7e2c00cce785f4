package admin

import (
	"github.com/spellworks/grimoire/internal/admin/repository"
	"github.com/spellworks/grimoire/internal/admin/service"
	"go.uber.org/fx"
)

var Module = fx.Module("admin.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
