package cli

import (
	"errors"
	"fmt"

	"github.com/hbjs97/dstack/internal/builtin"
)

// ExitCode는 dstack의 종료 코드다. builtin 명령의 종료 코드와 같은 체계다.
type ExitCode = builtin.ExitCode

// StatusError는 셸 세션이 마지막 명령의 종료 상태로 끝날 때 반환된다.
type StatusError struct {
	Code ExitCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("종료 상태 %d", e.Code)
}

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return builtin.MapExitCode(err)
}
