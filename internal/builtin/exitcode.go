package builtin

import (
	"errors"

	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/dirstack"
	"github.com/hbjs97/dstack/internal/navigator"
	"github.com/hbjs97/dstack/internal/sharemap"
)

// ExitCode는 builtin 명령의 종료 상태다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitNotFound는 이동 대상이 없거나 이전 디렉토리가 없을 때다.
	ExitNotFound ExitCode = 2
	// ExitStackEmpty는 디렉토리 스택이 비어 있을 때다.
	ExitStackEmpty ExitCode = 3
	// ExitUnsupportedPath는 정책상 네트워크 경로로 직접 이동할 수 없을 때다.
	ExitUnsupportedPath ExitCode = 4
	// ExitNoIdentifiers는 임시 드라이브 문자가 남아 있지 않을 때다.
	ExitNoIdentifiers ExitCode = 5
	// ExitMappingFailed는 share 매핑 명령이 실패했을 때다.
	ExitMappingFailed ExitCode = 6
	// ExitUsage는 잘못된 인자다.
	ExitUsage ExitCode = 64
	// ExitInternal는 내부 사전 조건 위반이다.
	ExitInternal ExitCode = 70
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 78
)

// ErrUsage는 명령 인자가 잘못되었을 때의 sentinel error다.
var ErrUsage = errors.New("잘못된 사용법")

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, sharemap.ErrPrecondition):
		return ExitInternal
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, navigator.ErrNotFound), errors.Is(err, navigator.ErrNoPrevious):
		return ExitNotFound
	case errors.Is(err, dirstack.ErrStackEmpty):
		return ExitStackEmpty
	case errors.Is(err, navigator.ErrUnsupportedNetworkPath):
		return ExitUnsupportedPath
	case errors.Is(err, sharemap.ErrNoIdentifiers):
		return ExitNoIdentifiers
	case errors.Is(err, sharemap.ErrMappingFailed):
		return ExitMappingFailed
	case errors.Is(err, config.ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
