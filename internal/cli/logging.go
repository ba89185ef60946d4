package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// newLogger는 w로 사람이 읽는 형식의 로그를 쓰는 zerolog.Logger를 만든다.
// verbose면 설정과 무관하게 debug 레벨이다.
func newLogger(w io.Writer, level zerolog.Level, verbose bool) zerolog.Logger {
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// isTerminal은 w가 터미널에 연결된 파일인지 확인한다.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
