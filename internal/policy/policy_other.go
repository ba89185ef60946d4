//go:build !windows

package policy

// NewPlatform은 드라이브 문자 없이 네트워크 경로를 다루는 플랫폼에서 항상 허용하는 Gate를 반환한다.
func NewPlatform() Gate {
	return Static(true)
}
