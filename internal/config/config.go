// Package config loads clai settings from config files and environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/clai-tools/clai/internal/errors"
)

const (
	// ConfigFileName is the default config file name in the working directory.
	ConfigFileName = ".clai.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/clai"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"

	// EnvPrefix namespaces environment overrides (CLAI_DEBUG, CLAI_NO_COLOR, ...).
	EnvPrefix = "CLAI"
)

// Animation cadence bounds. The render interval also bounds how long
// stopping the indicator can take, so it is kept short.
const (
	DefaultSpinnerInterval = 100 * time.Millisecond
	MinSpinnerInterval     = 80 * time.Millisecond
	MaxSpinnerInterval     = 150 * time.Millisecond
)

// Settings holds the user-tunable configuration for the terminal console.
type Settings struct {
	// Debug enables diagnostic output on the console.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// NoColor disables all styled output.
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
	// SpinnerInterval is the delay between animation frames.
	SpinnerInterval time.Duration `mapstructure:"spinner_interval" yaml:"spinner_interval"`
	// WaitingMessage is the default text shown beside the indicator.
	WaitingMessage string `mapstructure:"waiting_message" yaml:"waiting_message"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() Settings {
	return Settings{
		Debug:           false,
		NoColor:         false,
		SpinnerInterval: DefaultSpinnerInterval,
		WaitingMessage:  "Thinking...",
	}
}

// Load reads settings from path, or from the search locations when path
// is empty. Missing files are not an error; defaults apply. Environment
// variables with the CLAI_ prefix override file values.
func Load(path string) (Settings, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("spinner_interval", defaults.SpinnerInterval)
	v.SetDefault("waiting_message", defaults.WaitingMessage)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		path = Find()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file "+path,
				"Check the file exists and is valid YAML")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Config file "+path+" has unexpected contents",
			"Run 'clai init --force' to regenerate a valid config")
	}

	s.clamp()
	return s, nil
}

// Find locates the config file: .clai.yaml in the current directory, then
// ~/.config/clai/config.yaml. Returns "" when neither exists.
func Find() string {
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}

	return ""
}

// clamp keeps the animation cadence inside sane bounds.
func (s *Settings) clamp() {
	if s.SpinnerInterval <= 0 {
		s.SpinnerInterval = DefaultSpinnerInterval
	}
	if s.SpinnerInterval < MinSpinnerInterval {
		s.SpinnerInterval = MinSpinnerInterval
	}
	if s.SpinnerInterval > MaxSpinnerInterval {
		s.SpinnerInterval = MaxSpinnerInterval
	}
	if s.WaitingMessage == "" {
		s.WaitingMessage = Defaults().WaitingMessage
	}
}

// WriteDefault writes a default config file to path. Fails if the file
// already exists unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				path+" already exists",
				"Use --force to overwrite it")
		}
	}

	defaults := Defaults()
	// Durations render as human-readable strings ("100ms"), which viper
	// parses back on load.
	data, err := yaml.Marshal(map[string]interface{}{
		"debug":            defaults.Debug,
		"no_color":         defaults.NoColor,
		"spinner_interval": defaults.SpinnerInterval.String(),
		"waiting_message":  defaults.WaitingMessage,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't render the default config",
			"This is a bug in clai; please report it")
	}

	header := []byte("# clai configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check directory permissions")
	}
	return nil
}
