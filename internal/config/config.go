package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/hbjs97/dstack/internal/unc"
	"github.com/rs/zerolog"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// DefaultDirstackSize는 dirstack_size를 지정하지 않았을 때의 스택 크기다.
const DefaultDirstackSize = 20

// Config는 dstack 설정 파일의 최상위 구조체다.
type Config struct {
	Version      int      `toml:"version" validate:"gte=0"`
	SearchPath   []string `toml:"search_path" validate:"dive,required"`
	AutoPushd    bool     `toml:"auto_pushd"`
	PushdSilent  bool     `toml:"pushd_silent"`
	DirstackSize int      `toml:"dirstack_size" validate:"min=1,max=10000"`
	TempDrives   string   `toml:"temp_drives" validate:"required,driveletters"`
	UNCPolicy    string   `toml:"unc_policy" validate:"oneof=auto allow deny"`
	LogLevel     string   `toml:"log_level" validate:"loglevel"`
}

// Default는 설정 파일이 없을 때 쓰는 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	return &cfg, nil
}

// LoadOrDefault는 파일이 없으면 기본 설정을, 있으면 Load 결과를 반환한다.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Candidates는 temp_drives를 드라이브 식별자 목록으로 변환한다.
func (c *Config) Candidates() []string {
	return unc.Drives(c.TempDrives)
}

// Level은 log_level에 해당하는 zerolog 레벨이다. 검증을 통과한 값이면 에러가 없다.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.SearchPath == nil {
		c.SearchPath = cdpath()
	}
	if c.DirstackSize == 0 {
		c.DirstackSize = DefaultDirstackSize
	}
	if c.TempDrives == "" {
		c.TempDrives = sharemap.DefaultCandidates
	}
	c.TempDrives = strings.ToUpper(c.TempDrives)
	if c.UNCPolicy == "" {
		c.UNCPolicy = policy.ModeAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = zerolog.WarnLevel.String()
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
}

// cdpath는 CDPATH 환경 변수를 목록으로 나눈다. 빈 항목은 버린다.
func cdpath() []string {
	var out []string
	for _, p := range filepath.SplitList(os.Getenv("CDPATH")) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
