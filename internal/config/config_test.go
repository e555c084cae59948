package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// isolate moves the test into an empty working directory with no user
// config and a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	for _, key := range []string{"BABYNAMES_DATA_DIR", "BABYNAMES_THEME", "BABYNAMES_DEBUG", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	return tempDir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, "top_n: 5\n")

	assert.Equal(t, FileName, getConfigPath(quiet))
}

func TestGetConfigPath_UsesUserConfigDir_When_LocalMissing(t *testing.T) {
	tempDir := isolate(t)
	userPath := filepath.Join(tempDir, "xdg", "babynames", FileName)
	writeFile(t, userPath, "top_n: 5\n")

	assert.Equal(t, userPath, getConfigPath(quiet))
}

func TestGetConfigPath_ReturnsEmpty_When_NoConfigAvailable(t *testing.T) {
	isolate(t)

	assert.Equal(t, "", getConfigPath(quiet))
}

func TestLoadConfig_ReturnsDefaults_When_NoConfigFound(t *testing.T) {
	isolate(t)

	cfg := LoadConfig(quiet)

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultYear, cfg.DefaultYear)
	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	require.NotNil(t, cfg.Preview)
	assert.Equal(t, DefaultPreview, *cfg.Preview)
	assert.Empty(t, cfg.Path)
}

func TestLoadConfig_MergesYAMLOverrides_When_FilePresent(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, ""+
		"data_dir: /srv/ssa\n"+
		"default_year: 1999\n"+
		"top_n: 25\n"+
		"output_dir: out\n"+
		"theme: orca\n"+
		"format: plain\n"+
		"preview: 0\n"+
		"debug: true\n")

	cfg := LoadConfig(quiet)

	assert.Equal(t, "/srv/ssa", cfg.DataDir)
	assert.Equal(t, 1999, cfg.DefaultYear)
	assert.Equal(t, 25, cfg.TopN)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "orca", cfg.Theme)
	assert.Equal(t, "plain", cfg.Format)
	require.NotNil(t, cfg.Preview)
	assert.Equal(t, 0, *cfg.Preview)
	assert.True(t, cfg.Debug)
	assert.Equal(t, FileName, cfg.Path)
}

func TestLoadConfig_FallsBackToDefaults_When_YAMLMalformed(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, "top_n: [not, a, number\n")

	cfg := LoadConfig(quiet)

	assert.Equal(t, DefaultTopN, cfg.TopN)
	assert.Empty(t, cfg.Path)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/Downloads/names")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Downloads", "names"), got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	got, err = ExpandHome("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}
