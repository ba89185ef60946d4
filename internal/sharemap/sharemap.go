// Package sharemap assigns temporary drive letters to network share roots.
//
// A share root (\\host\share) is mapped at most once per session; repeated
// acquisitions bump a reference count and the OS mapping is torn down when the
// last reference is released. The free-drive snapshot is only a hint: the
// `net use` call itself decides whether a letter is available, and a failing
// letter is skipped in favor of the next candidate.
package sharemap

import (
	"context"
	"errors"
	"fmt"
)

// DefaultCandidates는 임시 드라이브 후보 문자 목록이다(Z부터 역순).
const DefaultCandidates = "ZYXWVUTSRQPONMLKJIHGFEDCB"

var (
	// ErrNoIdentifiers는 매핑에 쓸 수 있는 드라이브 문자가 없을 때 반환된다.
	ErrNoIdentifiers = errors.New("사용 가능한 임시 드라이브 문자 없음")
	// ErrMappingFailed는 네트워크 share 매핑 명령이 실패했을 때 반환된다.
	ErrMappingFailed = errors.New("네트워크 share 매핑 실패")
	// ErrUnmappingFailed는 매핑 해제 명령이 실패했을 때 반환된다. 치명적이지 않다.
	ErrUnmappingFailed = errors.New("네트워크 share 매핑 해제 실패")
	// ErrPrecondition은 호출자 결함(내부 오용)을 나타낸다. 사용자에게 노출하지 않는다.
	ErrPrecondition = errors.New("내부 사전 조건 위반")
	// ErrNotTracked는 추적 중이지 않은 식별자를 해제하려 할 때 반환된다.
	ErrNotTracked = fmt.Errorf("%w: 추적되지 않는 식별자", ErrPrecondition)
)

// Mapping은 share root 하나에 할당된 식별자와 참조 수다.
type Mapping struct {
	Root string // \\host\share (처음 요청된 표기)
	ID   string // "Z:" 또는 passthrough에서는 root 자체
	Refs int
}

// Mapper는 네트워크 share root를 임시 식별자로 가상화한다.
type Mapper interface {
	// Acquire는 shareRoot의 식별자를 반환한다. 이미 추적 중이면 참조 수만 늘린다.
	Acquire(ctx context.Context, shareRoot string) (string, error)
	// Release는 참조 수를 줄이고 0이 되면 OS 매핑을 해제한다.
	Release(ctx context.Context, id string) error
	// IsTracked는 id가 이 세션이 추적 중인 매핑인지 확인한다.
	IsTracked(id string) bool
	// Mappings는 추적 중인 매핑을 식별자 순으로 반환한다.
	Mappings() []Mapping
	// ReleaseAll은 참조 수와 무관하게 모든 매핑을 해제한다(세션 종료 시).
	ReleaseAll(ctx context.Context) error
}

// Prober는 OS에서 현재 비어 있는 드라이브 문자 스냅샷을 제공한다.
type Prober interface {
	FreeDrives() (map[string]bool, error)
}

// StaticPool은 고정된 빈 드라이브 집합을 보고하는 Prober다.
type StaticPool map[string]bool

// NewStaticPool은 ids가 모두 비어 있는 StaticPool을 생성한다.
func NewStaticPool(ids ...string) StaticPool {
	p := make(StaticPool, len(ids))
	for _, id := range ids {
		p[id] = true
	}
	return p
}

// FreeDrives는 풀의 복사본을 반환한다.
func (p StaticPool) FreeDrives() (map[string]bool, error) {
	out := make(map[string]bool, len(p))
	for id, free := range p {
		if free {
			out[id] = true
		}
	}
	return out, nil
}
