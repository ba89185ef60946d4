// Package navigator는 cd/pushd/popd의 이동 대상 해석과 작업 디렉토리 변경을 담당한다.
//
// Navigator 하나가 셸 세션 하나다. 디렉토리 스택과 share 매핑 테이블을 소유하며,
// 모든 명령은 완전히 성공하거나(위치 변경 + 상태 갱신) 아무것도 바꾸지 않고 실패한다.
// 예외는 popd로, 스택에서 꺼낸 뒤 이동이 실패하면 항목을 되돌리지 않는다.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hbjs97/dstack/internal/dirstack"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/hbjs97/dstack/internal/unc"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

var (
	// ErrNotFound는 대상이 없거나 디렉토리가 아닐 때 반환된다.
	ErrNotFound = errors.New("디렉토리를 찾을 수 없음")
	// ErrNoPrevious는 이전 디렉토리가 없는데 "cd -"를 요청했을 때 반환된다.
	ErrNoPrevious = errors.New("이전 디렉토리(OLDPWD)가 설정되지 않음")
	// ErrUnsupportedNetworkPath는 정책상 네트워크 경로로 직접 이동할 수 없고 auto_pushd도 꺼져 있을 때 반환된다.
	ErrUnsupportedNetworkPath = errors.New("네트워크 경로로 직접 이동할 수 없음")
)

// Options는 config에서 읽어 오는 이동 설정이다.
type Options struct {
	Fs         afero.Fs // nil이면 OS 파일시스템
	Log        zerolog.Logger
	SearchPath []string // 상대 경로를 찾을 기준 디렉토리 목록 (CDPATH)
	AutoPush   bool     // 차단된 네트워크 경로로 cd하면 pushd처럼 동작
	Home       string
}

// Navigator는 셸 세션의 디렉토리 이동 상태다.
type Navigator struct {
	fs     afero.Fs
	wd     WorkDir
	stack  *dirstack.Stack
	mapper sharemap.Mapper
	gate   policy.Gate
	opts   Options
	log    zerolog.Logger

	cwd    string
	cwdRef string // 현재 위치를 유지하는 매핑 식별자
	oldpwd string
}

// destination은 해석된 이동 대상이다. id는 이번 해석에서 Acquire한 식별자(롤백용)다.
type destination struct {
	path string
	id   string
}

// New는 현재 작업 디렉토리에서 시작하는 Navigator를 생성한다.
func New(wd WorkDir, stack *dirstack.Stack, mapper sharemap.Mapper, gate policy.Gate, opts Options) (*Navigator, error) {
	cwd, err := wd.Getwd()
	if err != nil {
		return nil, fmt.Errorf("navigator.New: %w", err)
	}
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Navigator{
		fs:     fs,
		wd:     wd,
		stack:  stack,
		mapper: mapper,
		gate:   gate,
		opts:   opts,
		log:    opts.Log,
		cwd:    cwd,
	}, nil
}

// Cwd는 현재 위치다.
func (n *Navigator) Cwd() string { return n.cwd }

// Home은 홈 디렉토리다.
func (n *Navigator) Home() string { return n.opts.Home }

// Dirs는 디렉토리 스택을 top부터 반환한다.
func (n *Navigator) Dirs() []string { return n.stack.List() }

// ClearDirs는 디렉토리 스택을 비우고 비운 항목들이 잡고 있던 매핑 참조를 반납한다.
func (n *Navigator) ClearDirs(ctx context.Context) {
	for _, e := range n.stack.Clear() {
		n.drop(ctx, e.Ref)
	}
}

// Mappings는 현재 추적 중인 share 매핑이다.
func (n *Navigator) Mappings() []sharemap.Mapping { return n.mapper.Mappings() }

// Cd는 target으로 이동한다.
// 정책상 막힌 네트워크 경로는 auto_pushd가 켜져 있으면 매핑 후 이전 위치를 스택에 쌓는다.
func (n *Navigator) Cd(ctx context.Context, target string) error {
	if target == "." {
		return nil
	}
	origin := n.cwd
	dest, err := n.resolve(ctx, target, n.opts.AutoPush)
	if err != nil {
		return fmt.Errorf("navigator.Cd: %w", err)
	}
	if err := n.enter(ctx, dest); err != nil {
		return fmt.Errorf("navigator.Cd: %w", err)
	}
	if dest.id != "" {
		n.push(ctx, dirstack.Entry{Path: origin, Ref: n.cwdRef})
		n.cwdRef = dest.id
		n.log.Debug().Str("origin", origin).Str("drive", dest.id).Msg("auto_pushd")
	}
	return nil
}

// resolve는 target을 실제 이동할 위치로 해석한다.
// mapNetwork가 false면 정책상 막힌 네트워크 경로는 ErrUnsupportedNetworkPath다.
func (n *Navigator) resolve(ctx context.Context, target string, mapNetwork bool) (destination, error) {
	switch {
	case target == "":
		if n.opts.Home == "" {
			return destination{}, fmt.Errorf("%w: 홈 디렉토리 미설정", ErrNotFound)
		}
		target = n.opts.Home
	case target == "-":
		if n.oldpwd == "" {
			return destination{}, ErrNoPrevious
		}
		target = n.oldpwd
	case target == ".":
		return destination{path: n.cwd}, nil
	}
	target = n.expandHome(target)

	if root, rest, ok := unc.Split(target); ok {
		return n.resolveNetwork(ctx, target, root, rest, mapNetwork)
	}

	if !unc.IsAbs(target) {
		candidates := []string{filepath.Join(n.cwd, target)}
		for _, base := range n.opts.SearchPath {
			candidates = append(candidates, filepath.Join(n.expandHome(base), target))
		}
		for _, c := range candidates {
			if n.isDir(c) {
				return destination{path: c}, nil
			}
		}
		return destination{}, fmt.Errorf("%w: %s", ErrNotFound, target)
	}

	if !n.isDir(target) {
		return destination{}, fmt.Errorf("%w: %s", ErrNotFound, target)
	}
	return destination{path: filepath.Clean(target)}, nil
}

func (n *Navigator) resolveNetwork(ctx context.Context, target, root, rest string, mapNetwork bool) (destination, error) {
	if n.gate.DirectAllowed() {
		return destination{path: target}, nil
	}
	if !mapNetwork {
		return destination{}, fmt.Errorf("%w: %s\n"+
			"  - 레지스트리 HKCU\\Software\\Microsoft\\Command Processor 의 DisableUNCCheck 값을 1로 설정해 직접 이동을 허용하거나\n"+
			"  - 설정 파일에서 auto_pushd = true 로 임시 드라이브 매핑을 켜세요 (pushd는 항상 매핑함)",
			ErrUnsupportedNetworkPath, target)
	}
	id, err := n.mapper.Acquire(ctx, root)
	if err != nil {
		return destination{}, err
	}
	path := unc.VolumeRoot(id)
	if rest != "" {
		path = filepath.Join(path, rest)
	}
	return destination{path: path, id: id}, nil
}

// enter는 dest로 작업 디렉토리를 바꾼다. 실패하면 이번 해석에서 얻은 매핑을 되돌린다.
func (n *Navigator) enter(ctx context.Context, dest destination) error {
	if err := n.wd.Chdir(dest.path); err != nil {
		if dest.id != "" && n.mapper.IsTracked(dest.id) {
			n.release(ctx, dest.id)
		}
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	n.oldpwd, n.cwd = n.cwd, dest.path
	return nil
}

// release는 매핑 참조를 하나 반납한다. 해제 실패는 경고로만 남긴다.
func (n *Navigator) release(ctx context.Context, id string) {
	err := n.mapper.Release(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, sharemap.ErrUnmappingFailed):
		n.log.Warn().Err(err).Str("drive", id).Msg("임시 드라이브 해제 실패 (무시하고 계속)")
	default:
		n.log.Error().Err(err).Str("drive", id).Msg("매핑 반납 실패")
	}
}

// push는 e를 스택에 쌓는다. 크기 제한으로 밀려난 항목의 참조는 반납한다.
func (n *Navigator) push(ctx context.Context, e dirstack.Entry) {
	if evicted, ok := n.stack.Push(e); ok {
		n.drop(ctx, evicted.Ref)
	}
}

// drop은 ref가 추적 중인 매핑이면 참조를 반납한다.
func (n *Navigator) drop(ctx context.Context, ref string) {
	if ref != "" && n.mapper.IsTracked(ref) {
		n.release(ctx, ref)
	}
}

func (n *Navigator) isDir(p string) bool {
	ok, err := afero.IsDir(n.fs, p)
	return err == nil && ok
}

func (n *Navigator) expandHome(p string) string {
	if n.opts.Home == "" || !strings.HasPrefix(p, "~") {
		return p
	}
	if p == "~" {
		return n.opts.Home
	}
	if p[1] == '/' || p[1] == '\\' {
		return filepath.Join(n.opts.Home, p[2:])
	}
	return p
}
