// Package config loads the optional risp rc file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the rc file looked up in the user's home directory when
// no explicit path is given.
const DefaultFileName = ".risprc.yaml"

var (
	ErrConfigFileMissing        = errors.New("config file is missing")
	ErrConfigFileUnreadable     = errors.New("config file is unreadable")
	ErrConfigFileUnmarshallable = errors.New("config file is unmarshallable")
)

// Config controls the interactive front end.
type Config struct {
	Prompt      string `yaml:"prompt,omitempty"`
	HistoryFile string `yaml:"historyFile,omitempty"`
	NoColor     bool   `yaml:"noColor,omitempty"`
}

// Default returns the configuration used when no rc file exists.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the rc file path in the user's home directory, or an
// empty string if the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads and unmarshals the rc file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrConfigFileMissing
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrConfigFileUnreadable, err.Error())
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(ErrConfigFileUnmarshallable, err.Error())
	}
	return cfg, nil
}

// LoadDefault loads the rc file from the default path, falling back to the
// default configuration when the file does not exist.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if err == ErrConfigFileMissing {
		return Default(), nil
	}
	return cfg, err
}
