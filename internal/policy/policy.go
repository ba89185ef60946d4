// Package policy는 네트워크 경로로 직접 이동해도 되는지 OS 정책을 읽는다.
package policy

import "fmt"

// Mode는 config의 unc_policy 값이다.
const (
	ModeAuto  = "auto"
	ModeAllow = "allow"
	ModeDeny  = "deny"
)

// Gate는 네트워크 경로 직접 이동 허용 여부를 알려준다.
type Gate interface {
	// DirectAllowed가 true면 네트워크 경로를 드라이브 매핑 없이 그대로 사용한다.
	DirectAllowed() bool
}

// Static은 고정된 값을 반환하는 Gate다.
type Static bool

// DirectAllowed는 s 자체를 반환한다.
func (s Static) DirectAllowed() bool {
	return bool(s)
}

// FromMode는 unc_policy 설정값에 맞는 Gate를 반환한다.
func FromMode(mode string) (Gate, error) {
	switch mode {
	case "", ModeAuto:
		return NewPlatform(), nil
	case ModeAllow:
		return Static(true), nil
	case ModeDeny:
		return Static(false), nil
	default:
		return nil, fmt.Errorf("policy.FromMode: 알 수 없는 unc_policy: %q", mode)
	}
}
