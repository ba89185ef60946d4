package sharemap

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/hbjs97/dstack/internal/cmdexec"
	"github.com/hbjs97/dstack/internal/unc"
	"github.com/rs/zerolog"
)

// TempDriveMapper는 `net use`로 share root를 임시 드라이브 문자에 매핑한다.
type TempDriveMapper struct {
	cmd        cmdexec.Commander
	prober     Prober
	candidates []string
	log        zerolog.Logger

	byRoot map[string]*Mapping // key: unc.FoldRoot
	byID   map[string]*Mapping
}

// NewTempDriveMapper는 candidates 순서대로 드라이브를 시도하는 Mapper를 생성한다.
func NewTempDriveMapper(cmd cmdexec.Commander, prober Prober, candidates []string, log zerolog.Logger) *TempDriveMapper {
	return &TempDriveMapper{
		cmd:        cmd,
		prober:     prober,
		candidates: candidates,
		log:        log,
		byRoot:     make(map[string]*Mapping),
		byID:       make(map[string]*Mapping),
	}
}

// Acquire는 shareRoot에 드라이브 문자를 할당한다.
func (m *TempDriveMapper) Acquire(ctx context.Context, shareRoot string) (string, error) {
	root, _, ok := unc.Split(shareRoot)
	if !ok {
		return "", fmt.Errorf("sharemap.Acquire: %w: 네트워크 경로 아님: %s", ErrPrecondition, shareRoot)
	}
	key := unc.FoldRoot(root)
	if e, ok := m.byRoot[key]; ok {
		e.Refs++
		m.log.Debug().Str("root", e.Root).Str("drive", e.ID).Int("refs", e.Refs).Msg("reusing share mapping")
		return e.ID, nil
	}

	// 스냅샷은 힌트일 뿐이다. 실패하면 모든 후보를 시도하고 net use 결과로 판단한다.
	free, err := m.prober.FreeDrives()
	if err != nil {
		m.log.Debug().Err(err).Msg("free drive snapshot unavailable")
		free = nil
	}

	var lastErr error
	for _, id := range m.candidates {
		if _, taken := m.byID[id]; taken {
			continue
		}
		if free != nil && !free[id] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("sharemap.Acquire: %w: %w", ErrMappingFailed, err)
		}
		out, err := m.cmd.Run(ctx, "net", "use", id, root, "/persistent:no")
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				return "", fmt.Errorf("sharemap.Acquire: %w: %w", ErrMappingFailed, err)
			}
			lastErr = fmt.Errorf("%s: %w: %s", id, err, strings.TrimSpace(string(out)))
			m.log.Debug().Err(err).Str("drive", id).Str("root", root).Msg("drive unavailable, trying next")
			continue
		}
		e := &Mapping{Root: root, ID: id, Refs: 1}
		m.byRoot[key] = e
		m.byID[id] = e
		m.log.Info().Str("root", root).Str("drive", id).Msg("mapped network share")
		return id, nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("sharemap.Acquire: %w (%w): %s: %v", ErrNoIdentifiers, ErrMappingFailed, root, lastErr)
	}
	return "", fmt.Errorf("sharemap.Acquire: %w: %s", ErrNoIdentifiers, root)
}

// Release는 id의 참조 수를 줄이고 0이 되면 매핑을 해제한다.
// 해제 명령이 실패해도 추적 항목은 제거되고 ErrUnmappingFailed가 반환된다.
func (m *TempDriveMapper) Release(ctx context.Context, id string) error {
	id = strings.ToUpper(id)
	e, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("sharemap.Release: %w: %s", ErrNotTracked, id)
	}
	e.Refs--
	if e.Refs > 0 {
		m.log.Debug().Str("drive", id).Int("refs", e.Refs).Msg("share mapping still referenced")
		return nil
	}
	m.forget(e)
	return m.unmap(ctx, e)
}

// IsTracked는 id가 추적 중인 드라이브인지 확인한다.
func (m *TempDriveMapper) IsTracked(id string) bool {
	_, ok := m.byID[strings.ToUpper(id)]
	return ok
}

// Mappings는 추적 중인 매핑을 드라이브 문자 순으로 반환한다.
func (m *TempDriveMapper) Mappings() []Mapping {
	out := make([]Mapping, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ReleaseAll은 남아 있는 모든 매핑을 해제한다. 실패는 모아서 반환한다.
func (m *TempDriveMapper) ReleaseAll(ctx context.Context) error {
	var errs []error
	for _, snap := range m.Mappings() {
		e := m.byID[snap.ID]
		m.forget(e)
		if err := m.unmap(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *TempDriveMapper) forget(e *Mapping) {
	delete(m.byID, e.ID)
	delete(m.byRoot, unc.FoldRoot(e.Root))
}

func (m *TempDriveMapper) unmap(ctx context.Context, e *Mapping) error {
	out, err := m.cmd.Run(ctx, "net", "use", e.ID, "/delete", "/y")
	if err != nil {
		return fmt.Errorf("sharemap.Release: %w: %s (%s): %v: %s",
			ErrUnmappingFailed, e.ID, e.Root, err, strings.TrimSpace(string(out)))
	}
	m.log.Info().Str("root", e.Root).Str("drive", e.ID).Msg("unmapped network share")
	return nil
}
