package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/dkoosis/babynames/pkg/render"
)

// Source names where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Formats accepted by --format and the format key.
var Formats = []string{"auto", "terminal", "plain", "json"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	DataDir    string
	Years      []int
	TopN       int
	OutputPath string
	Theme      string
	Format     string
	Preview    int
	Debug      bool

	// Flags to track if they were explicitly set by the user
	TopNSet    bool
	PreviewSet bool
	DebugSet   bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	DataDir    string // home-expanded
	Years      []int
	TopN       int
	OutputDir  string
	OutputPath string // explicit --out, empty to derive from OutputDir
	Theme      string
	Format     string
	Preview    int
	Debug      bool

	// Resolution metadata (for debugging)
	ConfigPath    string
	DataDirSource string
	YearsSource   string
	TopNSource    string
	ThemeSource   string
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
//
// Resolution order:
//  1. Load base config from .babynames.yaml (or defaults)
//  2. Apply environment variables
//  3. Apply CLI flags (highest priority)
//  4. Validate
func ResolveConfig(cliFlags CliFlags, logger *slog.Logger) (*ResolvedConfig, error) {
	appCfg := LoadConfig(logger)
	fileSource := SourceDefault
	if appCfg.Path != "" {
		fileSource = SourceFile
	}

	resolved := &ResolvedConfig{
		DataDir:       appCfg.DataDir,
		Years:         []int{appCfg.DefaultYear},
		TopN:          appCfg.TopN,
		OutputDir:     appCfg.OutputDir,
		Theme:         appCfg.Theme,
		Format:        appCfg.Format,
		Preview:       *appCfg.Preview,
		Debug:         appCfg.Debug,
		ConfigPath:    appCfg.Path,
		DataDirSource: fileSource,
		YearsSource:   fileSource,
		TopNSource:    fileSource,
		ThemeSource:   fileSource,
	}

	// Resolve DataDir with priority: CLI > ENV > file > default
	if cliFlags.DataDir != "" {
		resolved.DataDir = cliFlags.DataDir
		resolved.DataDirSource = SourceCLI
	} else if env := os.Getenv("BABYNAMES_DATA_DIR"); env != "" {
		resolved.DataDir = env
		resolved.DataDirSource = SourceEnv
	}

	if len(cliFlags.Years) > 0 {
		resolved.Years = slices.Clone(cliFlags.Years)
		resolved.YearsSource = SourceCLI
	}

	if cliFlags.TopNSet {
		resolved.TopN = cliFlags.TopN
		resolved.TopNSource = SourceCLI
	}

	// Resolve Theme with priority: CLI > NO_COLOR > ENV > file > default
	switch {
	case cliFlags.Theme != "":
		resolved.Theme = cliFlags.Theme
		resolved.ThemeSource = SourceCLI
	case os.Getenv("NO_COLOR") != "":
		resolved.Theme = "mono"
		resolved.ThemeSource = SourceEnv
	case os.Getenv("BABYNAMES_THEME") != "":
		resolved.Theme = os.Getenv("BABYNAMES_THEME")
		resolved.ThemeSource = SourceEnv
	}

	if cliFlags.Format != "" {
		resolved.Format = cliFlags.Format
	}
	if cliFlags.PreviewSet {
		resolved.Preview = cliFlags.Preview
	}
	resolved.OutputPath = cliFlags.OutputPath

	// Resolve Debug with priority: CLI > ENV > file > default
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
	} else if envDebug := getEnvBool("BABYNAMES_DEBUG"); envDebug != nil {
		resolved.Debug = *envDebug
	}

	dir, err := ExpandHome(resolved.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir %q: %w", resolved.DataDir, err)
	}
	resolved.DataDir = dir

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	logger.Debug("resolved config",
		"config_path", resolved.ConfigPath,
		"data_dir", resolved.DataDir, "data_dir_source", resolved.DataDirSource,
		"years_source", resolved.YearsSource,
		"top_n", resolved.TopN, "top_n_source", resolved.TopNSource,
		"theme", resolved.Theme, "theme_source", resolved.ThemeSource)
	return resolved, nil
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig returns an error for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.TopN <= 0 {
		return fmt.Errorf("%w: top N must be positive, got: %d", ErrInvalid, cfg.TopN)
	}
	if cfg.Preview < 0 {
		return fmt.Errorf("%w: preview must not be negative, got: %d", ErrInvalid, cfg.Preview)
	}
	if len(cfg.Years) == 0 {
		return fmt.Errorf("%w: at least one year is required", ErrInvalid)
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("%w: data dir cannot be empty", ErrInvalid)
	}
	if !slices.Contains(render.ThemeNames, cfg.Theme) {
		return fmt.Errorf("%w: unknown theme %q (expected one of %v)", ErrInvalid, cfg.Theme, render.ThemeNames)
	}
	if !slices.Contains(Formats, cfg.Format) {
		return fmt.Errorf("%w: unknown format %q (expected one of %v)", ErrInvalid, cfg.Format, Formats)
	}
	return nil
}
