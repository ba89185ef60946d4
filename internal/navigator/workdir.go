package navigator

import "os"

// WorkDir는 프로세스 작업 디렉토리를 읽고 바꾼다.
type WorkDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// OSWorkDir는 os.Getwd/os.Chdir를 사용하는 WorkDir다.
type OSWorkDir struct{}

// Getwd는 os.Getwd를 호출한다.
func (OSWorkDir) Getwd() (string, error) { return os.Getwd() }

// Chdir는 os.Chdir를 호출한다.
func (OSWorkDir) Chdir(dir string) error { return os.Chdir(dir) }
