package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Save는 cfg를 TOML로 path에 기록한다. 상위 디렉토리는 0700, 파일은 0600이다.
func Save(path string, cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config.Save: %w: %w", ErrConfig, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: 디렉토리 생성 실패: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	// WriteFile은 기존 파일의 권한을 바꾸지 않는다.
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}
