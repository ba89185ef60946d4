package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/dstack/internal/cmdexec"
	"github.com/hbjs97/dstack/internal/navigator"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App은 CLI 명령이 공유하는 의존성이다. 비어 있는 필드는 실제 OS 구현으로 채운다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string
	Verbose   bool

	Fs      afero.Fs
	WorkDir navigator.WorkDir
	Mapper  sharemap.Mapper
	Prober  sharemap.Prober
	Gate    policy.Gate
	Home    string
}

// NewApp은 실제 명령 실행기를 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Commander: &cmdexec.RealCommander{},
		CfgPath:   defaultCfgPath(),
	}
}

// NewRootCmd는 dstack CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 a를 공유하는 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dstack",
		Short:         "네트워크 경로를 임시 드라이브로 다루는 디렉토리 스택 셸",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if a.CfgPath == "" {
		a.CfgPath = defaultCfgPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", a.Verbose, "상세 출력")

	cmd.AddCommand(
		a.newShellCmd(),
		a.newDoctorCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

func (a *App) fs() afero.Fs {
	if a.Fs == nil {
		return afero.NewOsFs()
	}
	return a.Fs
}

func (a *App) prober() sharemap.Prober {
	if a.Prober != nil {
		return a.Prober
	}
	p, ok := sharemap.PlatformProber()
	if !ok {
		return nil
	}
	return p
}

func (a *App) home() string {
	if a.Home != "" {
		return a.Home
	}
	return homeDir()
}

func defaultCfgPath() string {
	return filepath.Join(homeDir(), ".config", "dstack", "config.toml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
