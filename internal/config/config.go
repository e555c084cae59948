package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the YAML config file.
const FileName = ".babynames.yaml"

// AppConfig represents the application's configuration from .babynames.yaml.
type AppConfig struct {
	DataDir     string `yaml:"data_dir"`
	DefaultYear int    `yaml:"default_year"`
	TopN        int    `yaml:"top_n"`
	OutputDir   string `yaml:"output_dir"`
	Theme       string `yaml:"theme"`
	Format      string `yaml:"format"`
	Preview     *int   `yaml:"preview"` // nil when unset; 0 disables the preview
	Debug       bool   `yaml:"debug"`

	// Path is the file the values were read from; empty for defaults.
	Path string `yaml:"-"`
}

// Constants for default values.
const (
	DefaultDataDir   = "~/Downloads/names"
	DefaultYear      = 2024
	DefaultTopN      = 1000
	DefaultOutputDir = "."
	DefaultTheme     = "default"
	DefaultFormat    = "auto"
	DefaultPreview   = 10
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	preview := DefaultPreview
	return &AppConfig{
		DataDir:     DefaultDataDir,
		DefaultYear: DefaultYear,
		TopN:        DefaultTopN,
		OutputDir:   DefaultOutputDir,
		Theme:       DefaultTheme,
		Format:      DefaultFormat,
		Preview:     &preview,
	}
}

// LoadConfig loads .babynames.yaml over the defaults. A missing file is not
// an error; an unreadable or malformed one is reported and the defaults are
// kept, like a missing file.
func LoadConfig(logger *slog.Logger) *AppConfig {
	appCfg := Defaults()

	configPath := getConfigPath(logger)
	if configPath == "" {
		logger.Debug("no config file found, using defaults")
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("error reading config file, using defaults", "path", configPath, "error", err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		logger.Warn("error unmarshalling config file, using defaults", "path", configPath, "error", err)
		return appCfg
	}

	// Merge YAML settings onto the defaults
	if fileCfg.DataDir != "" {
		appCfg.DataDir = fileCfg.DataDir
	}
	if fileCfg.DefaultYear != 0 {
		appCfg.DefaultYear = fileCfg.DefaultYear
	}
	if fileCfg.TopN != 0 {
		appCfg.TopN = fileCfg.TopN
	}
	if fileCfg.OutputDir != "" {
		appCfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.Theme != "" {
		appCfg.Theme = fileCfg.Theme
	}
	if fileCfg.Format != "" {
		appCfg.Format = fileCfg.Format
	}
	if fileCfg.Preview != nil {
		appCfg.Preview = fileCfg.Preview
	}
	appCfg.Debug = fileCfg.Debug
	appCfg.Path = configPath

	logger.Debug("loaded config file", "path", configPath)
	return appCfg
}

// getConfigPath tries to find the config file.
// It checks local directory first, then the user config dir.
func getConfigPath(logger *slog.Logger) string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not suitable for building a path.
	if err != nil || configHome == "" || configHome == "/" {
		logger.Debug("user config dir unavailable", "error", err, "path", configHome)
		return ""
	}
	userPath := filepath.Join(configHome, "babynames", FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
