package console

import (
	"os"
	"os/exec"

	"github.com/OrzMiku/minecraft-server-launcher-core/interfaces/iconsole"
)

func init() {
	iconsole.Register(iconsole.ModeInherit, func() iconsole.Console {
		return NewInherit()
	})
}

// Inherit hands the parent's own standard streams to the child. The child
// talks to the real terminal directly, so there is nothing to forward and
// the lifecycle methods are no-ops.
type Inherit struct{}

// NewInherit returns a console that shares the parent's streams.
func NewInherit() *Inherit {
	return &Inherit{}
}

// Mode returns the registered mode name.
func (c *Inherit) Mode() string { return iconsole.ModeInherit }

// Attach points the command at the parent's stdin, stdout and stderr.
// The child stays in the launcher's process group; moving it out would
// stop its terminal reads with SIGTTIN.
func (c *Inherit) Attach(cmd *exec.Cmd) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return nil
}

// Start is a no-op; the kernel does the copying.
func (c *Inherit) Start() {}

// Drain is a no-op; there are no pipes to drain.
func (c *Inherit) Drain() {}

// Close is a no-op.
func (c *Inherit) Close() error { return nil }
