// Package unc는 네트워크 경로(\\host\share\sub)와 드라이브 문자 식별자를 다룬다.
package unc

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Split은 네트워크 경로를 share root(\\host\share)와 그 아래 하위 경로로 나눈다.
// 네트워크 경로가 아니면 ok=false다. \\?\ 와 \\.\ 장치 경로는 네트워크 경로가 아니다.
func Split(p string) (root, rest string, ok bool) {
	if len(p) < 2 || !isSep(p[0]) || !isSep(p[1]) {
		return "", "", false
	}
	parts := strings.FieldsFunc(p[2:], func(r rune) bool { return r == '\\' || r == '/' })
	if len(parts) < 2 || parts[0] == "?" || parts[0] == "." {
		return "", "", false
	}
	root = `\\` + parts[0] + `\` + parts[1]
	rest = strings.Join(parts[2:], string(filepath.Separator))
	return root, rest, true
}

// IsNetworkPath는 p가 host와 share를 포함한 네트워크 경로인지 확인한다.
func IsNetworkPath(p string) bool {
	_, _, ok := Split(p)
	return ok
}

// FoldRoot는 대소문자와 구분자 차이를 제거한 share root 키를 반환한다.
func FoldRoot(root string) string {
	return cases.Fold().String(strings.ReplaceAll(root, "/", `\`))
}

// IsDrive는 id가 "Z:" 형태의 드라이브 식별자인지 확인한다.
func IsDrive(id string) bool {
	return len(id) == 2 && id[1] == ':' && isLetter(id[0])
}

// IsAbs는 p가 절대 경로인지 확인한다. 네트워크 경로와 "Z:\" 형태의 드라이브 루트 경로도 절대 경로다.
func IsAbs(p string) bool {
	if filepath.IsAbs(p) || IsNetworkPath(p) {
		return true
	}
	return len(p) >= 3 && IsDrive(p[:2]) && isSep(p[2])
}

// VolumeRoot는 식별자가 가리키는 볼륨의 루트 경로를 반환한다.
// 드라이브 식별자가 아니면(passthrough) 그대로 반환한다.
func VolumeRoot(id string) string {
	if IsDrive(id) {
		return strings.ToUpper(id) + string(filepath.Separator)
	}
	return id
}

// Drives는 "ZYX" 같은 문자 목록을 순서를 유지한 채 ["Z:", "Y:", "X:"]로 변환한다.
// 문자가 아닌 값과 중복은 건너뛴다.
func Drives(letters string) []string {
	seen := make(map[byte]bool, len(letters))
	out := make([]string, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if !isLetter(c) {
			continue
		}
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, string([]byte{c, ':'}))
	}
	return out
}

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
