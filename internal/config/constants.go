package config

import (
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
)

// Default slot window: every quarter hour from 06:00 to 23:45.
const (
	DefaultStartHour   = 6
	DefaultStartMinute = 0
	DefaultEndHour     = 23
	DefaultEndMinute   = 45
	DefaultInterval    = 15 * time.Minute
)

// Application settings.
const (
	AppName      = "slotgrid"
	EnvPrefix    = "SLOTGRID"
	ConfigFile   = "config.yml"
	LogFileName  = "slotgrid.log"
	DefaultTheme = "default"
)

// DefaultSchedule returns the slot window used when nothing is configured.
func DefaultSchedule() schedule.Config {
	return schedule.Config{
		Start:    models.TimeOfDay{Hour: DefaultStartHour, Minute: DefaultStartMinute},
		End:      models.TimeOfDay{Hour: DefaultEndHour, Minute: DefaultEndMinute},
		Interval: DefaultInterval,
	}
}
