// Package config loads the user settings shared by the command line tools
// and the conversion server.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gnote/dnttools/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultConfigFile = "config.yaml"
	appName           = "dnttools"
	configFileEnvVar  = "DNT_CONFIG"
	workersEnvVar     = "DNT_WORKERS"
	stylesheetEnvVar  = "DNT_STYLESHEET"
)

type Config struct {
	// Stylesheet is referenced from every SVG output when set.
	Stylesheet string `yaml:"stylesheet,omitempty"`
	// Formats lists the outputs produced per input file.
	Formats []string `yaml:"formats,omitempty"`
	// Workers bounds how many files are converted at once.
	Workers int `yaml:"workers,omitempty"`
	// Normalize rotates documents upright before rendering.
	Normalize   bool   `yaml:"normalize"`
	PNGWidth    uint   `yaml:"png_width,omitempty"`
	PageNumbers bool   `yaml:"page_numbers,omitempty"`
	Port        string `yaml:"port,omitempty"`
}

func Default() Config {
	return Config{
		Formats:   []string{"svg"},
		Workers:   4,
		Normalize: true,
		Port:      "8080",
	}
}

// ConfigPath returns the config file location, honouring DNT_CONFIG.
func ConfigPath() (string, error) {
	if p := os.Getenv(configFileEnvVar); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "."+appName, defaultConfigFile), nil
	}
	return filepath.Join(dir, appName, defaultConfigFile), nil
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	err = cfg.applyEnv()
	return cfg, err
}

func LoadFile(path string) (Config, error) {
	cfg := Default()

	content, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		log.Trace.Println("config file not found, using defaults:", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "can't read config")
	}

	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "can't parse %s", path)
	}
	log.Trace.Println("config loaded:", path)

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(workersEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", workersEnvVar)
		}
		c.Workers = n
	}
	if v := os.Getenv(stylesheetEnvVar); v != "" {
		c.Stylesheet = v
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if len(c.Formats) == 0 {
		return errors.New("no output formats configured")
	}
	return nil
}

// Save writes the config to path, creating parent directories.
func Save(c Config, path string) error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return ioutil.WriteFile(path, content, 0600)
}
