// Package builtin은 셸이 호출하는 cd, pushd, popd, dirs, pwd 명령을 구현한다.
//
// 각 명령은 Navigator 하나를 대상으로 실행되고 Result를 돌려준다.
// 실패한 명령의 Out은 항상 비어 있고 메시지는 Err에 담긴다.
package builtin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hbjs97/dstack/internal/navigator"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Result는 builtin 명령 하나의 실행 결과다.
type Result struct {
	Out    string
	Err    string
	Status ExitCode
}

// Commands는 Navigator에 묶인 builtin 명령 집합이다.
type Commands struct {
	Nav    *navigator.Navigator
	Silent bool // pushd/popd 후 스택을 출력하지 않음 (pushd_silent)
	Log    zerolog.Logger
}

// Names는 Dispatch가 처리하는 명령 이름이다.
var Names = []string{"cd", "pushd", "popd", "dirs", "pwd"}

// Dispatch는 argv[0]에 해당하는 명령을 실행한다. builtin이 아니면 ok=false다.
func (c *Commands) Dispatch(ctx context.Context, argv []string) (res Result, ok bool) {
	if len(argv) == 0 {
		return Result{}, false
	}
	args := argv[1:]
	switch argv[0] {
	case "cd":
		return c.Cd(ctx, args), true
	case "pushd":
		return c.Pushd(ctx, args), true
	case "popd":
		return c.Popd(ctx, args), true
	case "dirs":
		return c.Dirs(ctx, args), true
	case "pwd":
		return c.Pwd(args), true
	default:
		return Result{}, false
	}
}

// Cd는 인자 하나(없으면 홈)로 이동한다. "cd -"는 이동한 위치를 출력한다.
func (c *Commands) Cd(ctx context.Context, args []string) Result {
	args = stripDashDash(args)
	if len(args) > 1 {
		return c.fail("cd", fmt.Errorf("%w: 인자가 너무 많음", ErrUsage))
	}
	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	if err := c.Nav.Cd(ctx, target); err != nil {
		return c.fail("cd", err)
	}
	if target == "-" {
		return Result{Out: c.Nav.Cwd() + "\n"}
	}
	return Result{}
}

// Pushd는 대상으로 이동하며 이전 위치를 스택에 쌓는다. 인자가 없으면 top과 맞바꾼다.
func (c *Commands) Pushd(ctx context.Context, args []string) Result {
	args = stripDashDash(args)
	if len(args) > 1 {
		return c.fail("pushd", fmt.Errorf("%w: 인자가 너무 많음", ErrUsage))
	}
	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	if err := c.Nav.Pushd(ctx, target); err != nil {
		return c.fail("pushd", err)
	}
	return c.afterStackChange()
}

// Popd는 스택 top으로 돌아간다.
func (c *Commands) Popd(ctx context.Context, args []string) Result {
	if len(stripDashDash(args)) > 0 {
		return c.fail("popd", fmt.Errorf("%w: 인자를 받지 않음", ErrUsage))
	}
	if err := c.Nav.Popd(ctx); err != nil {
		return c.fail("popd", err)
	}
	return c.afterStackChange()
}

// Dirs는 현재 위치와 스택을 출력한다.
//
//	-c  스택 비우기
//	-p  한 줄에 하나씩
//	-v  번호를 붙여 한 줄에 하나씩
//	-l  홈 디렉토리를 ~로 줄이지 않음
func (c *Commands) Dirs(ctx context.Context, args []string) Result {
	flags := pflag.NewFlagSet("dirs", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	clearStack := flags.BoolP("clear", "c", false, "스택 비우기")
	perLine := flags.BoolP("print", "p", false, "한 줄에 하나씩 출력")
	verbose := flags.BoolP("verbose", "v", false, "번호를 붙여 출력")
	long := flags.BoolP("long", "l", false, "~ 축약 안 함")
	if err := flags.Parse(args); err != nil {
		return c.fail("dirs", fmt.Errorf("%w: %v", ErrUsage, err))
	}
	if flags.NArg() > 0 {
		return c.fail("dirs", fmt.Errorf("%w: 알 수 없는 인자 %q", ErrUsage, flags.Arg(0)))
	}

	if *clearStack {
		c.Nav.ClearDirs(ctx)
		return Result{}
	}
	return Result{Out: c.formatDirs(*perLine, *verbose, *long)}
}

// Pwd는 현재 위치를 출력한다.
func (c *Commands) Pwd(args []string) Result {
	if len(args) > 0 {
		return c.fail("pwd", fmt.Errorf("%w: 인자를 받지 않음", ErrUsage))
	}
	return Result{Out: c.Nav.Cwd() + "\n"}
}

func (c *Commands) afterStackChange() Result {
	if c.Silent {
		return Result{}
	}
	return Result{Out: c.formatDirs(false, false, false)}
}

// formatDirs는 현재 위치를 0번으로 하여 스택을 top부터 나열한다.
func (c *Commands) formatDirs(perLine, verbose, long bool) string {
	entries := append([]string{c.Nav.Cwd()}, c.Nav.Dirs()...)
	if !long {
		for i, e := range entries {
			entries[i] = contractHome(e, c.Nav.Home())
		}
	}

	var b strings.Builder
	switch {
	case verbose:
		for i, e := range entries {
			b.WriteString(" " + strconv.Itoa(i) + "  " + e + "\n")
		}
	case perLine:
		for _, e := range entries {
			b.WriteString(e + "\n")
		}
	default:
		b.WriteString(strings.Join(entries, " ") + "\n")
	}
	return b.String()
}

// fail은 에러를 Result로 바꾼다. 사전 조건 위반은 내부 에러로 숨기고 로그에만 남긴다.
func (c *Commands) fail(name string, err error) Result {
	status := MapExitCode(err)
	if errors.Is(err, sharemap.ErrPrecondition) {
		c.Log.Error().Err(err).Str("command", name).Msg("internal precondition violated")
		return Result{Err: name + ": 내부 오류\n", Status: status}
	}
	c.Log.Debug().Err(err).Str("command", name).Int("status", int(status)).Msg("builtin failed")
	return Result{Err: name + ": " + err.Error() + "\n", Status: status}
}

func contractHome(p, home string) string {
	if home == "" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home) && len(p) > len(home) && (p[len(home)] == '/' || p[len(home)] == '\\') {
		return "~" + p[len(home):]
	}
	return p
}

func stripDashDash(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
