// Package iconsole defines extensible interfaces for console attachment
// implementations. Each mode (e.g. inherit, proxy) must implement Console
// and register a factory under a unique mode name.
package iconsole

import (
	"fmt"
	"os/exec"
	"sort"
)

// Mode names for the built-in console implementations.
const (
	ModeInherit = "inherit"
	ModeProxy   = "proxy"
)

// Console wires the standard streams of a child process to the parent.
// The lifecycle is Attach -> Start -> Drain -> Close, driven by the
// server around the child's own start and wait.
type Console interface {
	// Mode returns the registered mode name of this console.
	Mode() string

	// Attach prepares the command before it starts: stdin/stdout/stderr
	// and, where the mode calls for it, process-group placement. It must
	// be called exactly once, before cmd.Start.
	Attach(cmd *exec.Cmd) error

	// Start launches any forwarding work. Called after the child started.
	Start()

	// Drain blocks until the child's output streams are exhausted.
	// It must be called before waiting on the child so no trailing
	// output is lost.
	Drain()

	// Close releases console resources. Called after the child exited.
	Close() error
}

// Factory constructs a fresh Console instance for one launch.
type Factory func() Console

var registeredConsoles = make(map[string]Factory)

// Register adds a console factory to the global registry under a unique mode name.
func Register(mode string, factory Factory) {
	if _, exists := registeredConsoles[mode]; exists {
		panic(fmt.Sprintf("console mode already registered: %s", mode))
	}
	registeredConsoles[mode] = factory
}

// New constructs a console for a previously registered mode.
func New(mode string) (Console, error) {
	factory, ok := registeredConsoles[mode]
	if !ok {
		return nil, fmt.Errorf("no console registered with mode: %s", mode)
	}
	return factory(), nil
}

// Modes returns all registered mode names in sorted order.
func Modes() []string {
	modes := make([]string, 0, len(registeredConsoles))
	for mode := range registeredConsoles {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
