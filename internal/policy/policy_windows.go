//go:build windows

package policy

import (
	"golang.org/x/sys/windows/registry"
)

const (
	commandProcessorKey = `Software\Microsoft\Command Processor`
	disableUNCCheck     = "DisableUNCCheck"
)

// Registry는 Command Processor의 DisableUNCCheck 레지스트리 값을 읽는 Gate다.
// HKCU를 먼저 보고, 값이 없으면 HKLM을 본다. 둘 다 없으면 직접 이동을 허용하지 않는다.
type Registry struct{}

// NewPlatform은 레지스트리 기반 Gate를 반환한다.
func NewPlatform() Gate {
	return Registry{}
}

// DirectAllowed는 DisableUNCCheck가 0이 아닌 값으로 설정되어 있으면 true다.
func (Registry) DirectAllowed() bool {
	for _, root := range []registry.Key{registry.CURRENT_USER, registry.LOCAL_MACHINE} {
		if v, ok := readDWORD(root); ok {
			return v != 0
		}
	}
	return false
}

func readDWORD(root registry.Key) (uint64, bool) {
	k, err := registry.OpenKey(root, commandProcessorKey, registry.QUERY_VALUE)
	if err != nil {
		return 0, false
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue(disableUNCCheck)
	if err != nil {
		return 0, false
	}
	return v, true
}
