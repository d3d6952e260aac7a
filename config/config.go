package config

import (
	"errors"
	"fmt"
	"time"

	"wwmem/dolphin"

	"github.com/spf13/viper"
)

// FileName is looked up in the directory passed to Load
const FileName = "wwwatch.cfg.json"

// Watch holds the settings the wwwatch command runs with
type Watch struct {
	ProcessNames []string
	Interval     time.Duration
	JSON         bool
	Color        bool
	DumpDir      string
}

// Load sets default values and merges FileName from configDir over them.
// A missing file leaves the defaults in place; a malformed one is an error.
func Load(configDir string) error {
	viper.SetDefault("process.names", dolphin.ProcessNames)
	viper.SetDefault("poll.interval", "250ms")
	viper.SetDefault("output.json", false)
	viper.SetDefault("output.color", true)
	viper.SetDefault("dump.dir", "")

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// Current returns the loaded settings
func Current() Watch {
	return Watch{
		ProcessNames: viper.GetStringSlice("process.names"),
		Interval:     viper.GetDuration("poll.interval"),
		JSON:         viper.GetBool("output.json"),
		Color:        viper.GetBool("output.color"),
		DumpDir:      viper.GetString("dump.dir"),
	}
}
