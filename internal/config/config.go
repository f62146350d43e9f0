// Package config resolves keybar's settings from defaults, an optional TOML
// file, KEYBAR_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned for settings that fail validation.
var ErrInvalidConfig = errors.New("invalid config")

// Keys shared by flags, environment and the config file.
const (
	KeyWidth        = "width"
	KeySeparator    = "separator"
	KeySimplifiedUI = "simplified_ui"
	KeyShowMode     = "show_mode"
	KeyLogLevel     = "log_level"
	KeyLogDir       = "log_dir"
	KeySnapshot     = "snapshot"
	KeyMode         = "mode"
)

// DefaultWidth is the column budget when nothing else is configured.
const DefaultWidth = 120

// DefaultSeparator is the arrow glyph drawn between segments.
const DefaultSeparator = ""

// Config holds the resolved settings.
type Config struct {
	Width        int    `mapstructure:"width"`
	Separator    string `mapstructure:"separator"`
	SimplifiedUI bool   `mapstructure:"simplified_ui"`
	ShowMode     bool   `mapstructure:"show_mode"`
	LogLevel     string `mapstructure:"log_level"`
	LogDir       string `mapstructure:"log_dir"`
	Snapshot     string `mapstructure:"snapshot"`
	// Mode overrides the snapshot's current mode when set.
	Mode string `mapstructure:"mode"`
}

// Load reads configuration. flags may be nil; flags that were not set on the
// command line do not override file or environment values.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyWidth, DefaultWidth)
	v.SetDefault(KeySeparator, DefaultSeparator)
	v.SetDefault(KeySimplifiedUI, false)
	v.SetDefault(KeyShowMode, false)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeySnapshot, "")
	v.SetDefault(KeyMode, "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("KEYBAR_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "keybar"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("KEYBAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit KEYBAR_CONFIG must exist; the default location is optional.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// bindFlags binds every flag whose name maps to a config key. Flag names use
// dashes ("simplified-ui"), keys use underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("binding flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidConfig, c.Width)
	}
	return nil
}
