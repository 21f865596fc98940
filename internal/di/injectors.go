//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"streamsched/internal"
	"streamsched/internal/controllers"
	"streamsched/internal/editor"
	"streamsched/internal/providers"
	"streamsched/internal/services"
	"streamsched/internal/settings"
	"streamsched/internal/structures"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewInstrumentedCacheProvider,

	settings.NewZstdCompressor,
	settings.NewStore,
	services.NewScheduleService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		coreSet,
		editor.NewSession,
		controllers.NewScheduleController,
		controllers.NewEditorController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitConsole(cfg *structures.CliFlags) (*internal.Console, error) {

	wire.Build(
		coreSet,
		internal.NewConsole,
	)

	return nil, nil
}
