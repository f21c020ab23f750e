package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// ConfigFile lives in the home directory and holds RTD_ROOT=<path>.
	ConfigFile = ".rtd"
	// RootKey names the root directory, in the config file or the environment.
	RootKey = "RTD_ROOT"
	// ConfigPathEnv overrides the location of the config file.
	ConfigPathEnv = "RTD_CONFIG_PATH"
)

var (
	ErrConfigMissing = errors.New("config not found")
	ErrInvalidRoot   = errors.New("invalid root")
)

// Config locates the task tree.
type Config interface {
	RootPath() string
	// Source describes where the root came from.
	Source() string
}

type fileConfig struct {
	Root   string `json:"root"`
	source string
}

func (f *fileConfig) RootPath() string {
	return f.Root
}

func (f *fileConfig) Source() string {
	return f.source
}

// StaticConfig uses root as given, for example from a command line flag.
func StaticConfig(root string) (Config, error) {
	root, err := validateRoot(root)
	if err != nil {
		return nil, err
	}
	return &fileConfig{Root: root, source: "flag"}, nil
}

// ConfigPath returns the config file location.
func ConfigPath() (string, error) {
	if override := os.Getenv(ConfigPathEnv); override != "" {
		return override, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("store: home directory: %w", err)
	}
	return filepath.Join(home, ConfigFile), nil
}

// LoadConfig reads RTD_ROOT from the environment or from ~/.rtd.
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	source := "env " + RootKey

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("store: read config %s: %w", path, err)
		}
		if os.Getenv(RootKey) == "" {
			source = path
		}
	} else if os.Getenv(RootKey) == "" {
		return nil, fmt.Errorf("%w: create %s with %s=<absolute path>", ErrConfigMissing, path, RootKey)
	}

	root := v.GetString(RootKey)
	if root == "" {
		return nil, fmt.Errorf("%w: %s needs %s=<absolute path>", ErrConfigMissing, path, RootKey)
	}
	root, err = validateRoot(root)
	if err != nil {
		return nil, err
	}
	return &fileConfig{Root: root, source: source}, nil
}

func validateRoot(root string) (string, error) {
	root, err := homedir.Expand(strings.TrimSpace(root))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !filepath.IsAbs(root) {
		return "", fmt.Errorf("%w: %q is not an absolute path", ErrInvalidRoot, root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}
	return filepath.Clean(root), nil
}
