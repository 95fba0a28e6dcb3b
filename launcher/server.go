package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/OrzMiku/minecraft-server-launcher-core/interfaces/iconsole"

	// Register the built-in console modes.
	_ "github.com/OrzMiku/minecraft-server-launcher-core/internal/console"
)

// State describes where a Server is in its single-use lifecycle.
type State int

const (
	// StateIdle means Run has not been attempted yet.
	StateIdle State = iota
	// StateRunning means the server process is alive.
	StateRunning
	// StateExited means the run is over, successfully or not.
	StateExited
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Server runs one server process to completion. A Server is single-use:
// Run may be attempted once, and relaunching takes a fresh Server around
// the same Config.
type Server struct {
	// Config describes the process to launch.
	Config *Config

	// Console wires the child's standard streams. Left nil, Run attaches
	// the inherit mode from the registry.
	Console iconsole.Console

	mu       sync.Mutex
	cmd      *exec.Cmd
	state    State
	exitCode int
}

// NewServer returns an idle server for the given config.
func NewServer(cfg *Config) *Server {
	return &Server{Config: cfg}
}

// Run launches the server process and blocks until it exits, returning
// the child's exit code. A nonzero exit is data, not an error; only
// spawn, stream-setup and wait failures produce a *LaunchError.
func (s *Server) Run() (int, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		return 0, fmt.Errorf("server already %s", state)
	}

	console := s.Console
	if console == nil {
		c, err := iconsole.New(iconsole.ModeInherit)
		if err != nil {
			s.failLocked()
			s.mu.Unlock()
			return 0, err
		}
		console = c
		s.Console = c
	}

	cmd := s.Config.Command()
	if err := console.Attach(cmd); err != nil {
		s.failLocked()
		s.mu.Unlock()
		return 0, &LaunchError{Op: "attach", Err: err}
	}
	if err := cmd.Start(); err != nil {
		_ = console.Close()
		s.failLocked()
		s.mu.Unlock()
		return 0, &LaunchError{Op: "start", Err: err}
	}
	s.cmd = cmd
	s.state = StateRunning
	s.mu.Unlock()

	console.Start()

	// Output pipes must be drained before reaping the child.
	console.Drain()

	code := 0
	err := cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
			err = nil
		} else {
			err = &LaunchError{Op: "wait", Err: err}
		}
	}
	_ = console.Close()

	s.mu.Lock()
	s.state = StateExited
	if err != nil {
		s.exitCode = -1
	} else {
		s.exitCode = code
	}
	s.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return code, nil
}

// failLocked consumes the server after a launch attempt that never got
// the process started. Callers hold mu.
func (s *Server) failLocked() {
	s.state = StateExited
	s.exitCode = -1
}

// Stop asks the server to shut down by sending SIGTERM. The server saves
// its world and exits on its own; Run observes the normal exit path.
func (s *Server) Stop() error {
	return s.Signal(syscall.SIGTERM)
}

// Signal forwards sig to the server process.
func (s *Server) Signal(sig os.Signal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning || s.cmd == nil || s.cmd.Process == nil {
		return errors.New("server not running")
	}
	return s.cmd.Process.Signal(sig)
}

// PID returns the OS process id, or 0 when no process is alive.
func (s *Server) PID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning || s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ExitCode returns the child's exit code once the server has exited.
// Before that, and for runs without a code (signal death, failed
// launch), it is -1.
func (s *Server) ExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateExited {
		return -1
	}
	return s.exitCode
}
