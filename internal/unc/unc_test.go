package unc_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/dstack/internal/unc"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Parallel()
	sep := string(filepath.Separator)
	tests := []struct {
		name     string
		input    string
		wantRoot string
		wantRest string
		wantOK   bool
	}{
		{"share root", `\\localhost\share`, `\\localhost\share`, "", true},
		{"trailing separator", `\\localhost\share\`, `\\localhost\share`, "", true},
		{"subpath", `\\host\share\a\b`, `\\host\share`, "a" + sep + "b", true},
		{"forward slashes", `//host/share/a`, `\\host\share`, "a", true},
		{"mixed separators", `\\host/share\a/b`, `\\host\share`, "a" + sep + "b", true},
		{"host only", `\\host`, "", "", false},
		{"device path", `\\?\C:\Windows`, "", "", false},
		{"dot device path", `\\.\pipe\name`, "", "", false},
		{"drive path", `C:\Users`, "", "", false},
		{"posix absolute", "/usr/local", "", "", false},
		{"relative", "sub", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, rest, ok := unc.Split(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantRest, rest)
			assert.Equal(t, tt.wantOK, unc.IsNetworkPath(tt.input))
		})
	}
}

func TestFoldRoot_CaseInsensitive(t *testing.T) {
	t.Parallel()
	assert.Equal(t, unc.FoldRoot(`\\LocalHost\Share`), unc.FoldRoot(`\\localhost\SHARE`))
	assert.Equal(t, unc.FoldRoot(`//host/share`), unc.FoldRoot(`\\HOST\share`))
	assert.NotEqual(t, unc.FoldRoot(`\\host\a`), unc.FoldRoot(`\\host\b`))
}

func TestVolumeRoot(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Z:"+string(filepath.Separator), unc.VolumeRoot("z:"))
	assert.Equal(t, `\\host\share`, unc.VolumeRoot(`\\host\share`))
}

func TestDrives(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Z:", "Y:", "X:", "W:"}, unc.Drives("ZYXW"))
	assert.Equal(t, []string{"Z:", "Y:"}, unc.Drives("zy z1"))
	assert.Empty(t, unc.Drives(""))
}

func TestIsAbs(t *testing.T) {
	t.Parallel()
	assert.True(t, unc.IsAbs(`\\host\share`))
	assert.True(t, unc.IsAbs(`Z:\`))
	assert.True(t, unc.IsAbs("Z:/sub"))
	assert.False(t, unc.IsAbs("Z:"))
	assert.False(t, unc.IsAbs("sub/dir"))
	assert.Equal(t, filepath.IsAbs("/usr"), unc.IsAbs("/usr"))
}
