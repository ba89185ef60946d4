// Package dirstack는 pushd/popd가 사용하는 디렉토리 스택이다.
package dirstack

import "errors"

// ErrStackEmpty는 빈 스택에서 pop할 때 반환된다.
var ErrStackEmpty = errors.New("디렉토리 스택이 비어 있음")

// Entry는 스택에 쌓인 위치 하나다.
type Entry struct {
	Path string
	Ref  string // 이 위치를 유지하는 share 매핑 식별자. 없으면 빈 문자열
}

// Stack은 최근에 push된 위치가 맨 앞에 오는 크기 제한 LIFO 스택이다.
// 한 세션에서만 사용되므로 내부 동기화는 하지 않는다.
type Stack struct {
	items []Entry // items[0]이 top
	max   int
}

// New는 최대 max개를 보관하는 빈 스택을 생성한다. max <= 0이면 제한이 없다.
func New(max int) *Stack {
	return &Stack{max: max}
}

// Push는 e를 top에 넣는다. 최대 크기를 넘으면 가장 오래된(bottom) 항목을 버리고
// 그 항목을 evicted로 돌려준다.
func (s *Stack) Push(e Entry) (evicted Entry, ok bool) {
	s.items = append(s.items, Entry{})
	copy(s.items[1:], s.items)
	s.items[0] = e
	if s.max > 0 && len(s.items) > s.max {
		evicted = s.items[s.max]
		s.items = s.items[:s.max]
		return evicted, true
	}
	return Entry{}, false
}

// Pop은 top 항목을 제거하고 반환한다.
func (s *Stack) Pop() (Entry, error) {
	if len(s.items) == 0 {
		return Entry{}, ErrStackEmpty
	}
	top := s.items[0]
	s.items = s.items[1:]
	return top, nil
}

// Peek은 top 항목을 제거하지 않고 반환한다.
func (s *Stack) Peek() (Entry, bool) {
	if len(s.items) == 0 {
		return Entry{}, false
	}
	return s.items[0], true
}

// Swap은 top 항목을 e로 교체하고 이전 top을 반환한다.
func (s *Stack) Swap(e Entry) (Entry, error) {
	if len(s.items) == 0 {
		return Entry{}, ErrStackEmpty
	}
	old := s.items[0]
	s.items[0] = e
	return old, nil
}

// Len은 스택 깊이다.
func (s *Stack) Len() int {
	return len(s.items)
}

// List는 top부터 정렬된 경로 목록 복사본을 반환한다.
func (s *Stack) List() []string {
	out := make([]string, len(s.items))
	for i, e := range s.items {
		out[i] = e.Path
	}
	return out
}

// Clear는 모든 항목을 제거하고 제거된 항목을 top부터 반환한다.
func (s *Stack) Clear() []Entry {
	cleared := s.items
	s.items = nil
	return cleared
}
