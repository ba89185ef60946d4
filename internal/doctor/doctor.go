package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hbjs97/dstack/internal/cmdexec"
	"github.com/hbjs97/dstack/internal/config"
	"github.com/hbjs97/dstack/internal/policy"
	"github.com/hbjs97/dstack/internal/sharemap"
	"github.com/spf13/afero"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Env는 RunAll이 진단할 환경이다.
type Env struct {
	Commander  cmdexec.Commander
	Gate       policy.Gate
	Prober     sharemap.Prober // nil이면 드라이브 문자가 없는 플랫폼
	Fs         afero.Fs
	Config     *config.Config
	ConfigPath string
}

// CheckNetCommand는 드라이브 매핑에 쓰는 net 명령이 동작하는지 확인한다.
func CheckNetCommand(ctx context.Context, cmd cmdexec.Commander) DiagResult {
	out, err := cmd.Run(ctx, "net", "use")
	if err != nil {
		return DiagResult{
			Name:    "net",
			Status:  StatusFail,
			Message: fmt.Sprintf("net use 실행 실패: %v", err),
			Fix:     "PATH에 %SystemRoot%\\System32 가 있는지 확인",
		}
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return DiagResult{
		Name:    "net",
		Status:  StatusOK,
		Message: strings.TrimSpace(lines[len(lines)-1]),
	}
}

// CheckPolicy는 네트워크 경로 직접 이동 정책과 auto_pushd 조합을 확인한다.
func CheckPolicy(gate policy.Gate, autoPushd bool) DiagResult {
	switch {
	case gate.DirectAllowed():
		return DiagResult{
			Name:    "unc_policy",
			Status:  StatusOK,
			Message: "네트워크 경로로 직접 이동 허용",
		}
	case autoPushd:
		return DiagResult{
			Name:    "unc_policy",
			Status:  StatusOK,
			Message: "직접 이동 차단됨, cd는 임시 드라이브로 매핑 (auto_pushd)",
		}
	default:
		return DiagResult{
			Name:    "unc_policy",
			Status:  StatusWarn,
			Message: "직접 이동 차단됨, 네트워크 경로는 pushd로만 이동 가능",
			Fix:     "auto_pushd = true 설정 또는 HKCU\\Software\\Microsoft\\Command Processor DisableUNCCheck=1",
		}
	}
}

// CheckFreeDrives는 임시 드라이브 후보 중 현재 비어 있는 문자가 있는지 확인한다.
func CheckFreeDrives(prober sharemap.Prober, candidates []string) DiagResult {
	if prober == nil {
		return DiagResult{
			Name:    "temp_drives",
			Status:  StatusOK,
			Message: "드라이브 문자를 쓰지 않는 플랫폼 (매핑 불필요)",
		}
	}
	free, err := prober.FreeDrives()
	if err != nil {
		return DiagResult{
			Name:    "temp_drives",
			Status:  StatusWarn,
			Message: fmt.Sprintf("빈 드라이브 확인 실패: %v", err),
		}
	}
	var avail []string
	for _, id := range candidates {
		if free[id] {
			avail = append(avail, id)
		}
	}
	if len(avail) == 0 {
		return DiagResult{
			Name:    "temp_drives",
			Status:  StatusFail,
			Message: fmt.Sprintf("후보 %d개 모두 사용 중", len(candidates)),
			Fix:     "temp_drives에 다른 문자를 추가하거나 net use <드라이브> /delete 로 정리",
		}
	}
	return DiagResult{
		Name:    "temp_drives",
		Status:  StatusOK,
		Message: fmt.Sprintf("%d개 사용 가능 (다음 할당: %s)", len(avail), avail[0]),
	}
}

// CheckSearchPath는 search_path 항목이 존재하는 디렉토리인지 확인한다.
func CheckSearchPath(fsys afero.Fs, paths []string) []DiagResult {
	var results []DiagResult
	for _, p := range paths {
		ok, err := afero.IsDir(fsys, p)
		if err != nil || !ok {
			results = append(results, DiagResult{
				Name:    "search_path",
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 디렉토리 아님", p),
				Fix:     "search_path에서 제거하거나 디렉토리 생성",
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    "search_path",
			Status:  StatusOK,
			Message: p,
		})
	}
	return results
}

// CheckConfigPermissions는 설정 파일 권한을 확인한다. 파일이 없으면 기본 설정을 쓴다.
func CheckConfigPermissions(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: "설정 파일 없음, 기본값 사용",
			Fix:     "dstack config init 으로 생성 가능",
		}
	}
	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: path,
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, env Env) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfigPermissions(env.ConfigPath))
	if env.Prober != nil {
		results = append(results, CheckNetCommand(ctx, env.Commander))
	}
	results = append(results, CheckPolicy(env.Gate, env.Config.AutoPushd))
	results = append(results, CheckFreeDrives(env.Prober, env.Config.Candidates()))
	results = append(results, CheckSearchPath(env.Fs, env.Config.SearchPath)...)
	return results
}
