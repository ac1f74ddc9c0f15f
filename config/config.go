package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "ONEONONE"

type App struct {
	Name     string `mapstructure:"name" yaml:"name"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}
type Lexicon struct {
	File string `mapstructure:"file" yaml:"file"` // empty: built-in Japanese lexicon
}
type Report struct {
	URL            string `mapstructure:"url" yaml:"url"` // presentation service; empty disables delivery
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}
type Output struct {
	Format string `mapstructure:"format" yaml:"format"` // text|json
	Path   string `mapstructure:"path" yaml:"path"`
}
type Root struct {
	App     App     `mapstructure:"app" yaml:"app"`
	Lexicon Lexicon `mapstructure:"lexicon" yaml:"lexicon"`
	Report  Report  `mapstructure:"report" yaml:"report"`
	Output  Output  `mapstructure:"output" yaml:"output"`
}

// New returns a viper instance with defaults and ONEONONE_* env overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("app.name", "1on1checker")
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("lexicon.file", "")
	v.SetDefault("report.url", "")
	v.SetDefault("report.timeout_seconds", 30)
	v.SetDefault("output.format", "text")
	v.SetDefault("output.path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads path, or when empty the first config.yaml found under
// config/<CONFIG_ENV>/ and the working directory. A missing default file is
// not an error.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		return nil
	}

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join("config", env))
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Decode unmarshals and validates the merged settings.
func Decode(v *viper.Viper) (*Root, error) {
	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Load(path string) (*Root, error) {
	v := New()
	if err := Read(v, path); err != nil {
		return nil, err
	}
	return Decode(v)
}

func (c *Root) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: output.format %q: want text or json", c.Output.Format)
	}
	if c.Report.TimeoutSeconds < 0 {
		return fmt.Errorf("config: report.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Root) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.App.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: app.log_level: %w", err)
	}
	return lvl, nil
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
