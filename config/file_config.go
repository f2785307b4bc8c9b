package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML layout, e.g.
//
//	server:
//	  addr: ":6380"
//	  log-dir: /var/log/numconv
//	limits:
//	  max-phrase-length: 512
type FileConfig struct {
	Server ServerCfgOpts `yaml:"server"`
	Limits ConvCfgOpts   `yaml:"limits"`
}

// DefaultConfigPath returns ~/.numconv/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultDataDir, "config.yaml"), nil
}

// ReadConfig loads the YAML file at path on top of the defaults.
// An empty path means DefaultConfigPath; a missing file yields the defaults.
func ReadConfig(path string) (*FileConfig, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve home directory: %w", err)
	}

	cfg := &FileConfig{
		Server: *DefaultServerOpts(home),
		Limits: *DefaultConvOpts(),
	}

	explicit := path != ""
	if !explicit {
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	} else if path, err = homedir.Expand(path); err != nil {
		return nil, fmt.Errorf("could not expand config path (%s): %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file (%s): %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file (%s): %w", path, err)
	}
	return cfg, nil
}
