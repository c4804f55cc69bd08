package components

import (
	"bloom-express/internal/pkg/clock"
	"bloom-express/internal/usecase/commands"
	"bloom-express/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewBlackoutQueries,
		queries.NewOrderQueries,
		queries.NewScheduleQueries,
		queries.NewStatsQueries,
		queries.NewZipcodeQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewReservationCommands,
		commands.NewBlackoutCommands,
		commands.NewAdminOrderCommands,
		commands.NewZipcodeCommands,
		commands.NewSettingsCommands,
	),
)
