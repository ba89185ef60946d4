package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
search_path = ["~/src", "/projects"]
auto_pushd = true
pushd_silent = true
dirstack_size = 50
temp_drives = "zyx"
unc_policy = "deny"
log_level = "DEBUG"`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{"~/src", "/projects"}, cfg.SearchPath)
	assert.True(t, cfg.AutoPushd)
	assert.True(t, cfg.PushdSilent)
	assert.Equal(t, 50, cfg.DirstackSize)
	assert.Equal(t, "ZYX", cfg.TempDrives)
	assert.Equal(t, []string{"Z:", "Y:", "X:"}, cfg.Candidates())
	assert.Equal(t, "deny", cfg.UNCPolicy)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	t.Setenv("CDPATH", "")
	path := testutil.TempConfigFile(t, "version = 1\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.SearchPath)
	assert.False(t, cfg.AutoPushd)
	assert.False(t, cfg.PushdSilent)
	assert.Equal(t, config.DefaultDirstackSize, cfg.DirstackSize)
	assert.Equal(t, "ZYXWVUTSRQPONMLKJIHGFEDCB", cfg.TempDrives)
	assert.Equal(t, "auto", cfg.UNCPolicy)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestLoadConfig_SearchPathFromCDPATH(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("CDPATH", "/a"+sep+sep+"/b")

	cfg, err := config.Load(testutil.TempConfigFile(t, "version = 1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, cfg.SearchPath)

	// 설정 파일 값이 CDPATH보다 우선한다.
	cfg, err = config.Load(testutil.TempConfigFile(t, `search_path = ["/c"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/c"}, cfg.SearchPath)

	// 빈 배열은 명시적으로 비운 것이다.
	cfg, err = config.Load(testutil.TempConfigFile(t, `search_path = []`))
	require.NoError(t, err)
	assert.Empty(t, cfg.SearchPath)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/config.toml")
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"스택 크기 초과", "dirstack_size = 10001"},
		{"음수 스택 크기", "dirstack_size = -1"},
		{"드라이브 문자 아님", `temp_drives = "Z1"`},
		{"중복 드라이브", `temp_drives = "ZZY"`},
		{"알 수 없는 정책", `unc_policy = "sometimes"`},
		{"알 수 없는 로그 레벨", `log_level = "loud"`},
		{"빈 검색 경로 항목", `search_path = ["/a", ""]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("CDPATH", "")

	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.LoadOrDefault(testutil.TempConfigFile(t, "unc_policy = 1"))
	assert.ErrorIs(t, err, config.ErrConfig)

	cfg, err = config.LoadOrDefault(testutil.SetupTestConfig(t))
	require.NoError(t, err)
	assert.Equal(t, "ZYXW", cfg.TempDrives)
	assert.Equal(t, zerolog.Disabled, cfg.Level())
}

func TestValidateFilePermissions(t *testing.T) {
	path := testutil.TempConfigFile(t, "version = 1\n")
	assert.NoError(t, config.ValidateFilePermissions(path))

	require.NoError(t, os.Chmod(path, 0644))
	assert.Error(t, config.ValidateFilePermissions(path))

	assert.Error(t, config.ValidateFilePermissions(filepath.Join(t.TempDir(), "nope")))
}
