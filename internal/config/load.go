package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/akyairhashvil/slotgrid/internal/util"
	"github.com/spf13/viper"
)

// Config is the runtime configuration read from file and environment.
type Config struct {
	Start    string        `mapstructure:"start"`
	End      string        `mapstructure:"end"`
	Interval time.Duration `mapstructure:"interval"`
	Theme    string        `mapstructure:"theme"`
	Serve    string        `mapstructure:"serve"`
	LogFile  string        `mapstructure:"log-file"`
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFile)
}

// Load reads configuration from path (or DefaultPath) and SLOTGRID_* variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := DefaultSchedule()
	v.SetDefault("start", def.Start.String())
	v.SetDefault("end", def.End.String())
	v.SetDefault("interval", def.Interval)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("serve", "")
	v.SetDefault("log-file", filepath.Join(util.DataDir(AppName), LogFileName))

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Schedule parses and validates the slot window.
func (c Config) Schedule() (schedule.Config, error) {
	start, err := models.ParseTimeOfDay(c.Start)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("start: %w", err)
	}
	end, err := models.ParseTimeOfDay(c.End)
	if err != nil {
		return schedule.Config{}, fmt.Errorf("end: %w", err)
	}
	sc := schedule.Config{Start: start, End: end, Interval: c.Interval}
	if err := sc.Validate(); err != nil {
		return schedule.Config{}, err
	}
	return sc, nil
}
