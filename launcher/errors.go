package launcher

import (
	"errors"
	"fmt"
)

// Validation errors reported by Build. The path-carrying kinds are typed
// so callers can match them with errors.As and read the offending value.
var (
	// ErrMissingServerDir reports that no server directory was configured.
	ErrMissingServerDir = errors.New("server directory is missing")

	// ErrMissingServerJar reports that no server jar was configured.
	ErrMissingServerJar = errors.New("server jar is missing")
)

// InvalidServerDirError reports a configured server directory that does
// not exist on disk.
type InvalidServerDirError struct {
	Dir string
}

func (e *InvalidServerDirError) Error() string {
	return fmt.Sprintf("invalid server directory '%s'", e.Dir)
}

// InvalidJavaPathError reports a java command that failed its version
// probe.
type InvalidJavaPathError struct {
	JavaPath string
	Err      error
}

func (e *InvalidJavaPathError) Error() string {
	return fmt.Sprintf("invalid java path '%s': %v", e.JavaPath, e.Err)
}

func (e *InvalidJavaPathError) Unwrap() error { return e.Err }

// LaunchError reports a failure to spawn, wire, or reap the server
// process. The child's own exit status is never a LaunchError.
type LaunchError struct {
	Op  string // "attach", "start" or "wait"
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Op, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }
