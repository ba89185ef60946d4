package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/dstack/internal/unc"
	"github.com/spf13/afero"
)

// FakeNet emulates `net use` against an in-memory filesystem.
// Mapping a drive creates its root directory in Fs; deleting it removes the tree,
// so a released drive becomes unreachable exactly like on a real host.
type FakeNet struct {
	Fs afero.Fs

	// Unavailable marks drives that another process already holds.
	Unavailable map[string]bool

	// FailDelete marks drives whose `net use X: /delete` fails.
	FailDelete map[string]bool

	// Calls records all commands that were executed, in order.
	Calls []string

	mapped map[string]string
}

// NewFakeNet creates a FakeNet with no drives mapped.
func NewFakeNet(fs afero.Fs) *FakeNet {
	return &FakeNet{
		Fs:          fs,
		Unavailable: make(map[string]bool),
		FailDelete:  make(map[string]bool),
		mapped:      make(map[string]string),
	}
}

// DriveRoot returns the directory FakeNet creates for a drive identifier.
func DriveRoot(id string) string {
	return unc.VolumeRoot(id)
}

// Run implements cmdexec.Commander for `net use` invocations.
func (n *FakeNet) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	fullCmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	n.Calls = append(n.Calls, fullCmd)

	if name != "net" || len(args) < 3 || args[0] != "use" {
		return nil, fmt.Errorf("FakeNet: unexpected command %q", fullCmd)
	}
	id := strings.ToUpper(args[1])

	if args[2] == "/delete" {
		if n.FailDelete[id] {
			return []byte("System error 1311 has occurred.\n"), errors.New("exit status 2")
		}
		if _, ok := n.mapped[id]; !ok {
			return []byte("The network connection could not be found.\n"), errors.New("exit status 2")
		}
		delete(n.mapped, id)
		if err := n.Fs.RemoveAll(DriveRoot(id)); err != nil {
			return nil, fmt.Errorf("FakeNet: %w", err)
		}
		return []byte(id + " was deleted successfully.\n"), nil
	}

	if _, taken := n.mapped[id]; taken || n.Unavailable[id] {
		return []byte("System error 85 has occurred.\n\nThe local device name is already in use.\n"), errors.New("exit status 2")
	}
	n.mapped[id] = args[2]
	if err := n.Fs.MkdirAll(DriveRoot(id), 0755); err != nil {
		return nil, fmt.Errorf("FakeNet: %w", err)
	}
	return []byte("The command completed successfully.\n"), nil
}

// Mapped returns the share root currently mapped to id.
func (n *FakeNet) Mapped(id string) (string, bool) {
	root, ok := n.mapped[strings.ToUpper(id)]
	return root, ok
}

// MappedCount returns the number of drives currently mapped.
func (n *FakeNet) MappedCount() int {
	return len(n.mapped)
}

// Called returns true if a command matching the given prefix was executed.
func (n *FakeNet) Called(prefix string) bool {
	return n.CallCount(prefix) > 0
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (n *FakeNet) CallCount(prefix string) int {
	count := 0
	for _, call := range n.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}
