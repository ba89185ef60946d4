package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
)

func TestFakeCommander_ExactMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("net use", "New connections will not be remembered.\n", nil)

	out, err := fc.Run(context.Background(), "net", "use")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "New connections will not be remembered.\n" {
		t.Errorf("got %q", string(out))
	}
}

func TestFakeCommander_PrefixMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("net use Z:", "The command completed successfully.\n", nil)

	out, err := fc.Run(context.Background(), "net", "use", "Z:", `\\host\share`, "/persistent:no")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "The command completed successfully.\n" {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestFakeCommander_LongestPrefixWins(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("net use", "", nil)
	fc.Register("net use Y:", "System error 85 has occurred.\n", fmt.Errorf("exit status 2"))

	if _, err := fc.Run(context.Background(), "net", "use", "Y:", `\\host\share`); err == nil {
		t.Fatal("expected the more specific response to win")
	}
	if _, err := fc.Run(context.Background(), "net", "use", "Z:", `\\host\share`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFakeCommander_NoMatch(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()

	_, err := fc.Run(context.Background(), "unknown", "command")
	if err == nil {
		t.Fatal("expected error for unregistered command")
	}
}

func TestFakeCommander_DefaultResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: []byte("default"), Err: nil}

	out, err := fc.Run(context.Background(), "any", "command")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "default" {
		t.Errorf("got %q, want %q", string(out), "default")
	}
}

func TestFakeCommander_RecordsCalls(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.DefaultResponse = &Response{Output: nil, Err: nil}

	fc.Run(context.Background(), "net", "use", "Z:", `\\host\share`)
	fc.Run(context.Background(), "net", "use", "Z:", "/delete", "/y")

	if len(fc.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(fc.Calls))
	}
	if !fc.Called("net use Z: /delete") {
		t.Error("expected unmap to be called")
	}
	if fc.CallCount("net use") != 2 {
		t.Errorf("expected 2 net use calls, got %d", fc.CallCount("net use"))
	}
}

func TestFakeCommander_ErrorResponse(t *testing.T) {
	t.Parallel()

	fc := NewFakeCommander()
	fc.Register("net use Z: /delete", "The network connection could not be found.\n", fmt.Errorf("exit status 2"))

	out, err := fc.Run(context.Background(), "net", "use", "Z:", "/delete")
	if err == nil {
		t.Fatal("expected error")
	}
	if string(out) != "The network connection could not be found.\n" {
		t.Errorf("got %q", string(out))
	}
}

func TestFakeNet_MapCreatesDriveRoot(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	n := NewFakeNet(fs)

	if _, err := n.Run(context.Background(), "net", "use", "Z:", `\\host\share`, "/persistent:no"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := afero.DirExists(fs, DriveRoot("Z:")); !ok {
		t.Fatal("expected drive root to exist after mapping")
	}
	if root, ok := n.Mapped("Z:"); !ok || root != `\\host\share` {
		t.Errorf("Mapped(Z:) = %q, %v", root, ok)
	}

	if _, err := n.Run(context.Background(), "net", "use", "Z:", "/delete", "/y"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := afero.DirExists(fs, DriveRoot("Z:")); ok {
		t.Fatal("expected drive root to be gone after unmapping")
	}
}

func TestFakeNet_UnavailableDrive(t *testing.T) {
	t.Parallel()

	n := NewFakeNet(afero.NewMemMapFs())
	n.Unavailable["Y:"] = true

	if _, err := n.Run(context.Background(), "net", "use", "Y:", `\\host\share`); err == nil {
		t.Fatal("expected error for unavailable drive")
	}
	if _, err := n.Run(context.Background(), "net", "use", "X:", `\\host\share`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFakeNet_DoubleMapFails(t *testing.T) {
	t.Parallel()

	n := NewFakeNet(afero.NewMemMapFs())
	if _, err := n.Run(context.Background(), "net", "use", "Z:", `\\host\a`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := n.Run(context.Background(), "net", "use", "Z:", `\\host\b`); err == nil {
		t.Fatal("expected error for drive already in use")
	}
}

func TestFakeNet_FailDelete(t *testing.T) {
	t.Parallel()

	n := NewFakeNet(afero.NewMemMapFs())
	n.FailDelete["Z:"] = true
	if _, err := n.Run(context.Background(), "net", "use", "Z:", `\\host\a`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := n.Run(context.Background(), "net", "use", "Z:", "/delete", "/y"); err == nil {
		t.Fatal("expected delete failure")
	}
	if _, ok := n.Mapped("Z:"); !ok {
		t.Error("failed delete must leave the mapping in place")
	}
}

func TestFakeNet_UnexpectedCommand(t *testing.T) {
	t.Parallel()

	n := NewFakeNet(afero.NewMemMapFs())
	if _, err := n.Run(context.Background(), "git", "status"); err == nil {
		t.Fatal("expected error for non-net command")
	}
}

func TestMemWorkDir_Chdir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	MkdirAll(t, fs, "/home/user")
	afero.WriteFile(fs, "/home/user/file.txt", []byte("x"), 0644)

	wd := NewMemWorkDir(fs, "/")
	if err := wd.Chdir("/home/user"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := wd.Getwd(); got != "/home/user" {
		t.Errorf("Getwd() = %q", got)
	}
	if err := wd.Chdir("/missing"); err == nil {
		t.Error("expected error for missing dir")
	}
	if err := wd.Chdir("/home/user/file.txt"); err == nil {
		t.Error("expected error for regular file")
	}
	if got, _ := wd.Getwd(); got != "/home/user" {
		t.Errorf("failed Chdir must not move: %q", got)
	}
}
