//go:build windows

package sharemap

import (
	"fmt"

	"github.com/hbjs97/dstack/internal/cmdexec"
	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

// LogicalDrives는 GetLogicalDrives 비트마스크로 빈 드라이브 문자를 보고한다.
// 다른 로그온 세션의 매핑은 보이지 않을 수 있으므로 결과는 힌트로만 쓴다.
type LogicalDrives struct{}

// FreeDrives는 사용 중이 아닌 A:~Z: 집합을 반환한다.
func (LogicalDrives) FreeDrives() (map[string]bool, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, fmt.Errorf("sharemap.LogicalDrives: %w", err)
	}
	free := make(map[string]bool, 26)
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			free[string(rune('A'+i))+":"] = true
		}
	}
	return free, nil
}

// PlatformProber는 이 플랫폼의 드라이브 스냅샷 Prober를 반환한다.
func PlatformProber() (Prober, bool) {
	return LogicalDrives{}, true
}

// NewPlatform은 Windows에서 임시 드라이브 Mapper를 반환한다.
func NewPlatform(cmd cmdexec.Commander, candidates []string, log zerolog.Logger) Mapper {
	return NewTempDriveMapper(cmd, LogicalDrives{}, candidates, log)
}
