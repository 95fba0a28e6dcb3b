package console

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/muesli/cancelreader"

	"github.com/OrzMiku/minecraft-server-launcher-core/interfaces/iconsole"
)

func init() {
	iconsole.Register(iconsole.ModeProxy, func() iconsole.Console {
		return NewProxy(os.Stdin, os.Stdout, os.Stderr)
	})
}

// Proxy pipes the child's standard streams through the parent. Output is
// forwarded line by line to out and errw; input is pumped from in into the
// child's stdin until the parent input ends or the child exits.
type Proxy struct {
	in   io.Reader
	out  io.Writer
	errw io.Writer

	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser

	source cancelreader.CancelReader

	outWG sync.WaitGroup
	inWG  sync.WaitGroup

	stdinOnce sync.Once
}

// NewProxy returns a console forwarding between the given parent streams
// and the child's pipes. The registry wires it to the process streams.
func NewProxy(in io.Reader, out, errw io.Writer) *Proxy {
	return &Proxy{in: in, out: out, errw: errw}
}

// Mode returns the registered mode name.
func (c *Proxy) Mode() string { return iconsole.ModeProxy }

// Attach acquires the child's three standard pipes and wraps the parent
// input in a cancelable reader so Close can stop a blocked stdin read.
func (c *Proxy) Attach(cmd *exec.Cmd) error {
	// The child gets its own process group: its console is the pipes,
	// and terminal signals stay with the launcher, which relays them.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	c.stdin, c.stdout, c.stderr = stdin, stdout, stderr

	// Input that cannot be watched (not every reader is pollable) is
	// still pumped; Close then cannot interrupt a blocked read.
	if source, err := cancelreader.NewReader(c.in); err == nil {
		c.source = source
	}
	return nil
}

// Start spawns the three forwarding goroutines. Called after the child
// process started.
func (c *Proxy) Start() {
	c.outWG.Add(2)
	go func() {
		defer c.outWG.Done()
		forwardLines(c.stdout, c.out, c.errw, "stdout")
	}()
	go func() {
		defer c.outWG.Done()
		forwardLines(c.stderr, c.errw, c.errw, "stderr")
	}()

	source := io.Reader(c.in)
	if c.source != nil {
		source = c.source
	}
	c.inWG.Add(1)
	go func() {
		defer c.inWG.Done()
		pumpInput(source, c.stdin, c.errw, c.closeChildStdin)
	}()
}

// Drain waits for both output forwarders. They end when the child exits
// and its pipes hit end-of-stream, so Drain must run before reaping the
// child and never blocks past its exit.
func (c *Proxy) Drain() {
	c.outWG.Wait()
}

// Close cancels the input pump and releases the remaining pipe ends.
func (c *Proxy) Close() error {
	if c.source != nil {
		if c.source.Cancel() {
			c.inWG.Wait()
		}
		// A source that cannot be cancelled leaves the pump blocked on its
		// last read; it exits on the next input or when the parent does.
		_ = c.source.Close()
	}
	if c.stdin != nil {
		c.closeChildStdin()
	}
	return nil
}

// closeChildStdin closes the child's stdin pipe once, signalling
// end-of-input. Both the pump (on parent EOF) and Close call it.
func (c *Proxy) closeChildStdin() {
	c.stdinOnce.Do(func() {
		_ = c.stdin.Close()
	})
}
