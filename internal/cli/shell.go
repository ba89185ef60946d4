package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/hbjs97/dstack/internal/builtin"
	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/dirstack"
	"github.com/hbjs97/dstack/internal/navigator"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ExitCommandNotFound는 builtin이 아닌 명령을 입력했을 때의 종료 상태다.
const ExitCommandNotFound ExitCode = 127

func (a *App) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "cd, pushd, popd, dirs, pwd를 해석하는 셸 세션을 시작한다",
		Long: `표준 입력에서 한 줄씩 명령을 읽어 실행한다.
세션이 끝나면(EOF, exit, 인터럽트) 세션이 만든 임시 드라이브를 모두 해제한다.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runShell(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// newNavigator는 설정에 맞춰 셸 세션 하나의 Navigator를 만든다.
func (a *App) newNavigator(cfg *config.Config, log zerolog.Logger) (*navigator.Navigator, error) {
	gate := a.Gate
	if gate == nil {
		g, err := policy.FromMode(cfg.UNCPolicy)
		if err != nil {
			return nil, fmt.Errorf("cli.shell: %w: %w", ErrConfig, err)
		}
		gate = g
	}
	mapper := a.Mapper
	if mapper == nil {
		mapper = sharemap.NewPlatform(a.Commander, cfg.Candidates(), log)
	}
	wd := a.WorkDir
	if wd == nil {
		wd = navigator.OSWorkDir{}
	}
	return navigator.New(wd, dirstack.New(cfg.DirstackSize), mapper, gate, navigator.Options{
		Fs:         a.fs(),
		Log:        log,
		SearchPath: cfg.SearchPath,
		AutoPush:   cfg.AutoPushd,
		Home:       a.home(),
	})
}

// runShell은 in이 끝나거나 exit를 만날 때까지 명령을 실행한다.
// 마지막 명령이 실패했으면 그 종료 상태를 StatusError로 반환한다.
func (a *App) runShell(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadOrDefault(a.CfgPath)
	if err != nil {
		return fmt.Errorf("cli.shell: %w", err)
	}
	log := newLogger(errOut, cfg.Level(), a.Verbose)

	nav, err := a.newNavigator(cfg, log)
	if err != nil {
		return fmt.Errorf("cli.shell: %w", err)
	}
	// 취소된 ctx로는 net use /delete를 실행할 수 없다.
	defer func() { _ = nav.Close(context.WithoutCancel(ctx)) }()

	cmds := &builtin.Commands{Nav: nav, Silent: cfg.PushdSilent, Log: log}
	prompt := isTerminal(in)
	lines, stop := readLines(in)
	defer stop()

	status := builtin.ExitSuccess
	for {
		if prompt {
			fmt.Fprintf(out, "%s> ", nav.Cwd())
		}
		var line string
		select {
		case <-ctx.Done():
			log.Debug().Err(ctx.Err()).Msg("shell interrupted")
			return exitStatus(status)
		case l, ok := <-lines:
			if !ok {
				return exitStatus(status)
			}
			line = l
		}

		argv, err := builtin.Split(line)
		if err != nil {
			fmt.Fprintf(errOut, "dstack: %v\n", err)
			status = builtin.MapExitCode(err)
			continue
		}
		if len(argv) == 0 {
			continue
		}

		switch argv[0] {
		case "exit":
			return exitWith(argv[1:], status, errOut)
		case "drives":
			printMappings(out, nav.Mappings())
			status = builtin.ExitSuccess
			continue
		}

		res, ok := cmds.Dispatch(ctx, argv)
		if !ok {
			res = builtin.Result{
				Err:    fmt.Sprintf("%s: 명령을 찾을 수 없음\n", argv[0]),
				Status: ExitCommandNotFound,
			}
		}
		io.WriteString(out, res.Out)
		io.WriteString(errOut, res.Err)
		status = res.Status
	}
}

// readLines는 in을 별도 goroutine에서 읽는다. stop을 호출하면 읽기를 멈춘다.
// Scan에 막혀 있는 goroutine은 in을 닫아야 깨어나므로 in이 io.Closer면 stop이 닫는다.
func readLines(in io.Reader) (<-chan string, func()) {
	lines := make(chan string)
	done := make(chan struct{})
	stop := func() {
		close(done)
		if c, ok := in.(io.Closer); ok {
			_ = c.Close()
		}
	}
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines, stop
}

func exitWith(args []string, last ExitCode, errOut io.Writer) error {
	if len(args) == 0 {
		return exitStatus(last)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 || n > 255 {
		fmt.Fprintf(errOut, "exit: 숫자 인자 필요: %s\n", args[0])
		return exitStatus(builtin.ExitUsage)
	}
	return exitStatus(ExitCode(n))
}

func exitStatus(code ExitCode) error {
	if code == builtin.ExitSuccess {
		return nil
	}
	return &StatusError{Code: code}
}

func printMappings(w io.Writer, mappings []sharemap.Mapping) {
	for _, m := range mappings {
		fmt.Fprintf(w, "%s  %s  (%d)\n", m.ID, m.Root, m.Refs)
	}
}
