package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Defaults(t *testing.T) {
	tempDir := isolate(t)

	resolved, err := ResolveConfig(CliFlags{}, quiet)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "home", "Downloads", "names"), resolved.DataDir)
	assert.Equal(t, []int{DefaultYear}, resolved.Years)
	assert.Equal(t, DefaultTopN, resolved.TopN)
	assert.Equal(t, DefaultFormat, resolved.Format)
	assert.Equal(t, DefaultPreview, resolved.Preview)
	assert.Equal(t, SourceDefault, resolved.DataDirSource)
	assert.Equal(t, SourceDefault, resolved.ThemeSource)
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name            string
		file            string
		cliFlags        CliFlags
		envVars         map[string]string
		wantDataDir     string
		wantDataSource  string
		wantTheme       string
		wantThemeSource string
	}{
		{
			name:            "file overrides defaults",
			file:            "data_dir: /from/file\ntheme: orca\n",
			wantDataDir:     "/from/file",
			wantDataSource:  SourceFile,
			wantTheme:       "orca",
			wantThemeSource: SourceFile,
		},
		{
			name:            "env overrides file",
			file:            "data_dir: /from/file\ntheme: orca\n",
			envVars:         map[string]string{"BABYNAMES_DATA_DIR": "/from/env", "BABYNAMES_THEME": "mono"},
			wantDataDir:     "/from/env",
			wantDataSource:  SourceEnv,
			wantTheme:       "mono",
			wantThemeSource: SourceEnv,
		},
		{
			name:            "CLI overrides env",
			envVars:         map[string]string{"BABYNAMES_DATA_DIR": "/from/env", "BABYNAMES_THEME": "mono"},
			cliFlags:        CliFlags{DataDir: "/from/cli", Theme: "orca"},
			wantDataDir:     "/from/cli",
			wantDataSource:  SourceCLI,
			wantTheme:       "orca",
			wantThemeSource: SourceCLI,
		},
		{
			name:            "NO_COLOR forces mono over BABYNAMES_THEME",
			envVars:         map[string]string{"NO_COLOR": "1", "BABYNAMES_THEME": "orca"},
			cliFlags:        CliFlags{DataDir: "/d"},
			wantDataDir:     "/d",
			wantDataSource:  SourceCLI,
			wantTheme:       "mono",
			wantThemeSource: SourceEnv,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, FileName, tt.file)
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			resolved, err := ResolveConfig(tt.cliFlags, quiet)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDataDir, resolved.DataDir)
			assert.Equal(t, tt.wantDataSource, resolved.DataDirSource)
			assert.Equal(t, tt.wantTheme, resolved.Theme)
			assert.Equal(t, tt.wantThemeSource, resolved.ThemeSource)
		})
	}
}

func TestResolveConfig_YearsAndTopN(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, "default_year: 2010\ntop_n: 50\n")

	resolved, err := ResolveConfig(CliFlags{}, quiet)
	require.NoError(t, err)
	assert.Equal(t, []int{2010}, resolved.Years)
	assert.Equal(t, 50, resolved.TopN)
	assert.Equal(t, SourceFile, resolved.YearsSource)

	flags := CliFlags{Years: []int{2020, 2021}, TopN: 3, TopNSet: true}
	resolved, err = ResolveConfig(flags, quiet)
	require.NoError(t, err)
	assert.Equal(t, []int{2020, 2021}, resolved.Years)
	assert.Equal(t, 3, resolved.TopN)
	assert.Equal(t, SourceCLI, resolved.TopNSource)

	flags.Years[0] = 1900
	assert.Equal(t, 2020, resolved.Years[0], "resolved years must not alias the flag slice")
}

func TestResolveConfig_Debug(t *testing.T) {
	isolate(t)
	t.Setenv("BABYNAMES_DEBUG", "true")

	resolved, err := ResolveConfig(CliFlags{}, quiet)
	require.NoError(t, err)
	assert.True(t, resolved.Debug)

	resolved, err = ResolveConfig(CliFlags{Debug: false, DebugSet: true}, quiet)
	require.NoError(t, err)
	assert.False(t, resolved.Debug)
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cliFlags CliFlags
		errMsg   string
	}{
		{name: "zero top N", cliFlags: CliFlags{TopN: 0, TopNSet: true}, errMsg: "top N must be positive"},
		{name: "negative top N", cliFlags: CliFlags{TopN: -5, TopNSet: true}, errMsg: "top N must be positive"},
		{name: "negative preview", cliFlags: CliFlags{Preview: -1, PreviewSet: true}, errMsg: "preview must not be negative"},
		{name: "unknown theme", cliFlags: CliFlags{Theme: "neon"}, errMsg: "unknown theme"},
		{name: "unknown format", cliFlags: CliFlags{Format: "xml"}, errMsg: "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := ResolveConfig(tt.cliFlags, quiet)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
