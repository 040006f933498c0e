package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Debug DebugConfig `mapstructure:"debug"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PanelWidth int    `mapstructure:"panel_width"`
	PerRow     int    `mapstructure:"per_row"`
	Color      string `mapstructure:"color"`
	AltScreen  bool   `mapstructure:"alt_screen"`
}

type DebugConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// LoadConfig reads configuration from file and env. path wins over
// TEXTR_CONFIG, which wins over the user config dir. A missing default
// file is not an error; env overrides use the TEXTR_ prefix.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ui.panel_width", 40)
	v.SetDefault("ui.per_row", 3)
	v.SetDefault("ui.color", "")
	v.SetDefault("ui.alt_screen", false)
	v.SetDefault("debug.log_file", "")

	v.SetConfigType("toml")

	explicit := path != ""
	if path == "" {
		path = os.Getenv("TEXTR_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "textr"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TEXTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.UI.PanelWidth < 10 {
		return fmt.Errorf("%w: ui.panel_width must be at least 10, got %d", ErrInvalidConfig, c.UI.PanelWidth)
	}
	if c.UI.PerRow < 1 {
		return fmt.Errorf("%w: ui.per_row must be at least 1, got %d", ErrInvalidConfig, c.UI.PerRow)
	}
	return nil
}
