package builtin

import (
	"fmt"
	"strings"
)

// Split은 명령 줄을 인자로 나눈다. 작은따옴표와 큰따옴표만 인식하며,
// 역슬래시는 경로 구분자이므로 이스케이프로 취급하지 않는다.
func Split(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("builtin.Split: %w: 닫히지 않은 따옴표 %c", ErrUsage, quote)
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}
