package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service  ServiceConfig  `mapstructure:"service"`
	Scanner  ScannerConfig  `mapstructure:"scanner"`
	Render   RenderConfig   `mapstructure:"render"`
	Warranty WarrantyConfig `mapstructure:"warranty"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type ScannerConfig struct {
	// Camera selects the platform frame source: "none" or "directory".
	Camera          string `mapstructure:"camera"`
	FramesDir       string `mapstructure:"framesDir"`
	FrameIntervalMS int    `mapstructure:"frameIntervalMs"`
}

type RenderConfig struct {
	// FontPath points at a TTF used for code captions. Empty uses the
	// built-in bitmap face.
	FontPath string `mapstructure:"fontPath"`
}

type WarrantyConfig struct {
	Cron       string `mapstructure:"cron"`
	WindowDays int    `mapstructure:"windowDays"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
