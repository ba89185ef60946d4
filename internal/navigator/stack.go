package navigator

import (
	"context"
	"fmt"

	"github.com/hbjs97/dstack/internal/dirstack"
)

// Pushd는 target으로 이동하고 성공하면 이전 위치를 스택에 쌓는다.
// 정책상 막힌 네트워크 경로는 auto_pushd와 무관하게 임시 드라이브로 매핑한다.
// target이 비어 있으면 현재 위치와 스택 top을 맞바꾼다.
func (n *Navigator) Pushd(ctx context.Context, target string) error {
	if target == "" {
		return n.swapTop(ctx)
	}
	origin := n.cwd
	dest, err := n.resolve(ctx, target, true)
	if err != nil {
		return fmt.Errorf("navigator.Pushd: %w", err)
	}
	if err := n.enter(ctx, dest); err != nil {
		return fmt.Errorf("navigator.Pushd: %w", err)
	}
	n.push(ctx, dirstack.Entry{Path: origin, Ref: n.cwdRef})
	n.cwdRef = dest.id
	return nil
}

// swapTop은 현재 위치와 스택 top을 맞바꾼다. 각 위치의 매핑 참조도 함께 옮겨진다.
func (n *Navigator) swapTop(ctx context.Context) error {
	top, ok := n.stack.Peek()
	if !ok {
		return fmt.Errorf("navigator.Pushd: %w", dirstack.ErrStackEmpty)
	}
	origin := dirstack.Entry{Path: n.cwd, Ref: n.cwdRef}
	if err := n.enter(ctx, destination{path: top.Path}); err != nil {
		return fmt.Errorf("navigator.Pushd: %w", err)
	}
	_, _ = n.stack.Swap(origin) // Peek 성공 후이므로 비어 있지 않음
	n.cwdRef = top.Ref
	return nil
}

// Popd는 스택 top으로 이동하고, 떠나는 위치가 pushd로 얻은 매핑 참조를 갖고 있으면 반납한다.
// 드라이브는 참조 수가 0이 될 때만 해제된다. 이동에 실패하면 꺼낸 항목은 되돌리지 않고
// 그 항목의 참조만 반납한다.
func (n *Navigator) Popd(ctx context.Context) error {
	entry, err := n.stack.Pop()
	if err != nil {
		return fmt.Errorf("navigator.Popd: %w", err)
	}
	if err := n.enter(ctx, destination{path: entry.Path}); err != nil {
		n.drop(ctx, entry.Ref)
		return fmt.Errorf("navigator.Popd: %w", err)
	}
	leaving := n.cwdRef
	n.cwdRef = entry.Ref
	n.drop(ctx, leaving)
	return nil
}

// Close는 세션 종료 시 스택 상태와 무관하게 남은 매핑을 모두 해제한다.
func (n *Navigator) Close(ctx context.Context) error {
	n.cwdRef = ""
	if err := n.mapper.ReleaseAll(ctx); err != nil {
		n.log.Warn().Err(err).Msg("세션 종료 중 임시 드라이브 해제 실패")
		return fmt.Errorf("navigator.Close: %w", err)
	}
	return nil
}
