// Package config handles configuration loading and merging for babynames.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--data-dir, --theme, --top, --preview, --debug, ...)
//  2. Environment variables (BABYNAMES_DATA_DIR, BABYNAMES_THEME, BABYNAMES_DEBUG, NO_COLOR)
//  3. YAML config file (.babynames.yaml in local directory or ~/.config/babynames/.babynames.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - DataDir: directory holding the yob<year>.txt files (default ~/Downloads/names)
//   - DefaultYear: year used when no --year flag is given (default 2024)
//   - TopN: number of names to keep (default 1000)
//   - OutputDir: where the CSV is written when --out is not given (default ".")
//   - Theme, Format, Preview: presentation of the run report on stdout
//
// # Environment Variables
//
//   - BABYNAMES_DATA_DIR: overrides data_dir
//   - BABYNAMES_THEME: overrides theme
//   - BABYNAMES_DEBUG: "true" or "1" enables debug logging
//   - NO_COLOR: any non-empty value forces the mono theme
package config
