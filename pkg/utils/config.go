package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
	"github.com/oxygene76/spheretrace/pkg/geometry/shapes"
)

const (
	// EnvPrefix is prepended to environment overrides, e.g. SPHERETRACE_LOG_LEVEL
	EnvPrefix = "SPHERETRACE"

	configDirName  = ".spheretrace"
	configFileName = "config.yaml"
)

var ErrInvalidConfig = errors.Register(geomath.Codespace, 7, "invalid config")

// Config represents the tool configuration
type Config struct {
	Scene  SceneConfig  `json:"scene" yaml:"scene" mapstructure:"scene"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
	Math   MathConfig   `json:"math" yaml:"math" mapstructure:"math"`
}

// SceneConfig holds the sphere used when a command does not specify one
type SceneConfig struct {
	Center []float64 `json:"center" yaml:"center" mapstructure:"center"`
	Radius float64   `json:"radius" yaml:"radius" mapstructure:"radius"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format    string `json:"format" yaml:"format" mapstructure:"format"`
	Precision int    `json:"precision" yaml:"precision" mapstructure:"precision"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
	JSON  bool   `json:"json" yaml:"json" mapstructure:"json"`
}

// MathConfig contains numeric tolerances
type MathConfig struct {
	Tolerance float64 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Scene: SceneConfig{
			Center: []float64{0, 0, 0},
			Radius: 1,
		},
		Output: OutputConfig{
			Format:    "json",
			Precision: 6,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Math: MathConfig{
			Tolerance: 1e-9,
		},
	}
}

// DefaultConfigPath returns $HOME/.spheretrace/config.yaml
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configDirName, configFileName), nil
}

// LoadConfig reads configuration from path, or searches the default locations
// when path is empty. Finding no file in the default locations is not an
// error and defaults are returned, but an explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDirName))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("scene.center", d.Scene.Center)
	v.SetDefault("scene.radius", d.Scene.Radius)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.precision", d.Output.Precision)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("math.tolerance", d.Math.Tolerance)
}

// SaveConfig writes configuration as YAML to path, creating parent directories
func SaveConfig(config *Config, path string) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultSphere returns the sphere described by the scene section
func (c *Config) DefaultSphere() shapes.Sphere {
	if len(c.Scene.Center) != 3 {
		return shapes.DefaultSphere()
	}
	center := geomath.NewVector3(c.Scene.Center[0], c.Scene.Center[1], c.Scene.Center[2])
	return shapes.NewSphere(center, c.Scene.Radius)
}

// Validate checks a configuration that was changed after loading, for
// example by command line overrides
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if len(config.Scene.Center) != 3 {
		return errors.Wrapf(ErrInvalidConfig, "scene.center must have 3 components, got %d", len(config.Scene.Center))
	}

	if err := config.DefaultSphere().Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	validFormats := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validFormats[config.Output.Format] {
		return errors.Wrapf(ErrInvalidConfig, "invalid output format: %s", config.Output.Format)
	}

	if config.Output.Precision < 0 || config.Output.Precision > 17 {
		return errors.Wrapf(ErrInvalidConfig, "output precision %d out of range [0,17]", config.Output.Precision)
	}

	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "invalid log level: %s", config.Log.Level)
	}

	if config.Math.Tolerance <= 0 {
		return errors.Wrap(ErrInvalidConfig, "math tolerance must be positive")
	}

	return nil
}
