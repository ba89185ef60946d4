package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/dstack/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "설정 파일을 관리한다",
	}
	cmd.AddCommand(a.newConfigInitCmd(), a.newConfigShowCmd())
	return cmd
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본값으로 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(cmd.OutOrStdout(), force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일 덮어쓰기")
	return cmd
}

// runConfigInit는 기본 설정을 파일로 저장한다. CDPATH가 있으면 search_path에 들어간다.
func (a *App) runConfigInit(out io.Writer, force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.config: 설정 파일이 이미 존재합니다 (--force로 덮어쓰기): %s", a.CfgPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cli.config: %w", err)
	}

	cfg := config.Default()
	if cfg.SearchPath == nil {
		cfg.SearchPath = []string{}
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return fmt.Errorf("cli.config: %w", err)
	}

	fmt.Fprintf(out, "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Fprintln(out, "값을 수정한 후 dstack doctor로 환경을 확인하세요.")
	return nil
}

func (a *App) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "기본값이 적용된 현재 설정을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(a.CfgPath)
			if err != nil {
				return fmt.Errorf("cli.config: %w", err)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}
