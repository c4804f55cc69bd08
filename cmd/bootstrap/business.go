package bootstrap

import (
	"time"

	"bloom-express/internal/domain/schedule"
	"bloom-express/internal/pkg/config"

	"go.uber.org/fx"
)

var BusinessModule = fx.Module("business",
	fx.Provide(
		NewHours,
		NewLocation,
	),
)

func NewHours(cfg config.Config) (schedule.Hours, error) {
	return schedule.NewHours(
		cfg.Business.OpenHour,
		cfg.Business.CloseHour,
		cfg.Business.BufferHours,
		cfg.Business.SlotGranularity,
	)
}

// NewLocation is the shop's wall clock. The service runs with TZ set to the
// delivery area's zone; all slot arithmetic happens in it.
func NewLocation() *time.Location {
	return time.Local
}
