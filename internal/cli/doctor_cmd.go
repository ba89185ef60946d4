package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/doctor"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "환경 설정을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *App) runDoctor(ctx context.Context, out io.Writer) error {
	cfg, cfgErr := config.LoadOrDefault(a.CfgPath)
	if cfgErr != nil {
		fmt.Fprintf(out, "  [FAIL] config: %v\n", cfgErr)
		fmt.Fprintln(out, "      Fix: dstack config init 실행 또는 설정 파일 확인")
		cfg = config.Default()
	}

	gate := a.Gate
	if gate == nil {
		g, err := policy.FromMode(cfg.UNCPolicy)
		if err != nil {
			return fmt.Errorf("cli.doctor: %w: %w", ErrConfig, err)
		}
		gate = g
	}

	results := doctor.RunAll(ctx, doctor.Env{
		Commander:  a.Commander,
		Gate:       gate,
		Prober:     a.prober(),
		Fs:         a.fs(),
		Config:     cfg,
		ConfigPath: a.CfgPath,
	})
	printDiagResults(out, results)
	return cfgErr
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(w, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
