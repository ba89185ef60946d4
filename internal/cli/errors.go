package cli

import (
	"github.com/hbjs97/dstack/internal/builtin"
	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/dirstack"
	"github.com/hbjs97/dstack/internal/navigator"
	"github.com/hbjs97/dstack/internal/sharemap"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrNotFound는 이동 대상 디렉토리가 없을 때의 sentinel error다.
	ErrNotFound = navigator.ErrNotFound
	// ErrNoPrevious는 "cd -"에 쓸 이전 디렉토리가 없을 때의 sentinel error다.
	ErrNoPrevious = navigator.ErrNoPrevious
	// ErrUnsupportedNetworkPath는 정책상 네트워크 경로로 직접 이동할 수 없을 때의 sentinel error다.
	ErrUnsupportedNetworkPath = navigator.ErrUnsupportedNetworkPath
	// ErrStackEmpty는 디렉토리 스택이 비어 있을 때의 sentinel error다.
	ErrStackEmpty = dirstack.ErrStackEmpty
	// ErrNoIdentifiers는 임시 드라이브 문자가 남아 있지 않을 때의 sentinel error다.
	ErrNoIdentifiers = sharemap.ErrNoIdentifiers
	// ErrMappingFailed는 share 매핑 명령이 실패했을 때의 sentinel error다.
	ErrMappingFailed = sharemap.ErrMappingFailed
	// ErrUnmappingFailed는 매핑 해제 명령이 실패했을 때의 sentinel error다.
	ErrUnmappingFailed = sharemap.ErrUnmappingFailed
	// ErrUsage는 명령 인자가 잘못되었을 때의 sentinel error다.
	ErrUsage = builtin.ErrUsage
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
