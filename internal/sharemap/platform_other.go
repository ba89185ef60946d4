//go:build !windows

package sharemap

import (
	"github.com/hbjs97/dstack/internal/cmdexec"
	"github.com/rs/zerolog"
)

// PlatformProber는 드라이브 문자가 없는 플랫폼에서 (nil, false)다.
func PlatformProber() (Prober, bool) {
	return nil, false
}

// NewPlatform은 드라이브 문자가 없는 플랫폼에서 Passthrough를 반환한다.
func NewPlatform(_ cmdexec.Commander, _ []string, _ zerolog.Logger) Mapper {
	return Passthrough{}
}
