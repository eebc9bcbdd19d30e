package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fioncat/wrapgen/pkg/wrapper"
)

const defaultMode = wrapper.ModeDev

// Config holds defaults for the render flags, an explicitly set flag always
// takes precedence.
type Config struct {
	Mode string `json:"mode" toml:"mode"`

	InstallAppDir string `json:"install_app_dir" toml:"install_app_dir"`

	Binary string `json:"binary" toml:"binary"`

	Template string `json:"template" toml:"template"`

	path string `json:"-" toml:"-"`
}

// Load reads the config file at path. No file is read when path is empty,
// and a missing file yields the default config.
func Load(path string) (*Config, error) {
	var cfg Config
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	if data != nil {
		err := toml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config toml: %w", err)
		}
	}

	err := cfg.complete()
	if err != nil {
		return nil, fmt.Errorf("complete config: %w", err)
	}
	cfg.path = path

	return &cfg, nil
}

func (c *Config) complete() error {
	if c.Mode == "" {
		c.Mode = string(defaultMode)
	}
	_, err := wrapper.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	if c.Template == "" {
		c.Template = wrapper.DefaultTemplate
	}
	c.Template = os.ExpandEnv(c.Template)

	return nil
}

func (c *Config) GetMode() wrapper.Mode {
	return wrapper.Mode(c.Mode)
}

func (c *Config) GetPath() string {
	return c.path
}
