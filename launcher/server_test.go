package launcher_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OrzMiku/minecraft-server-launcher-core/internal/console"
	"github.com/OrzMiku/minecraft-server-launcher-core/launcher"
)

// stubConfig builds a Config around a stub java script, skipping the
// probe. The script receives the usual `-jar server.jar` arguments and
// ignores them.
func stubConfig(t *testing.T, body string) *launcher.Config {
	t.Helper()
	return &launcher.Config{
		ServerDir: t.TempDir(),
		ServerJar: "server.jar",
		JavaPath:  writeStubJava(t, body),
	}
}

func TestServerRunExitCode(t *testing.T) {
	srv := launcher.NewServer(stubConfig(t, "exit 7"))
	assert.Equal(t, launcher.StateIdle, srv.State())
	assert.Equal(t, -1, srv.ExitCode(), "no exit code before a run")

	code, err := srv.Run()
	require.NoError(t, err, "a nonzero exit code is data, not an error")
	assert.Equal(t, 7, code)
	assert.Equal(t, launcher.StateExited, srv.State())
	assert.Equal(t, 7, srv.ExitCode())
}

func TestServerRunSpawnFailure(t *testing.T) {
	cfg := &launcher.Config{
		ServerDir: t.TempDir(),
		ServerJar: "server.jar",
		JavaPath:  filepath.Join(t.TempDir(), "vanished"),
	}
	srv := launcher.NewServer(cfg)

	code, err := srv.Run()
	require.Error(t, err)
	var launchErr *launcher.LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "start", launchErr.Op)
	assert.Equal(t, 0, code)
	assert.Equal(t, launcher.StateExited, srv.State())
	assert.Equal(t, -1, srv.ExitCode())
}

func TestServerSingleUse(t *testing.T) {
	srv := launcher.NewServer(stubConfig(t, "exit 0"))

	_, err := srv.Run()
	require.NoError(t, err)

	_, err = srv.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")

	// Relaunching takes a fresh Server; the Config is reusable.
	again := launcher.NewServer(srv.Config)
	code, err := again.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestServerRunProxyConsole(t *testing.T) {
	srv := launcher.NewServer(stubConfig(t, "echo 'Done (3.14s)! For help, type \"help\"'"))
	var out, errB bytes.Buffer
	srv.Console = console.NewProxy(strings.NewReader(""), &out, &errB)

	code, err := srv.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Done (3.14s)! For help, type \"help\"\n", out.String())
	assert.Empty(t, errB.String())
}

func TestServerStopTerminatesChild(t *testing.T) {
	// The stub traps TERM, reports readiness, and would otherwise sit
	// for ten seconds. `wait` makes the shell interruptible; the trap
	// reaps the sleep so nothing keeps the inherited streams open.
	srv := launcher.NewServer(stubConfig(t, `trap 'kill $!; exit 0' TERM
touch ready
sleep 10 &
wait
exit 1`))

	done := make(chan struct {
		code int
		err  error
	}, 1)
	go func() {
		code, err := srv.Run()
		done <- struct {
			code int
			err  error
		}{code, err}
	}()

	ready := filepath.Join(srv.Config.ServerDir, "ready")
	require.Eventually(t, func() bool {
		_, err := os.Stat(ready)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond, "server never signalled readiness")

	assert.Equal(t, launcher.StateRunning, srv.State())
	assert.Greater(t, srv.PID(), 0)
	assert.Equal(t, -1, srv.ExitCode(), "no exit code while running")
	require.NoError(t, srv.Stop())

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, 0, res.code)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not exit after Stop")
	}

	assert.Equal(t, launcher.StateExited, srv.State())
	assert.Equal(t, 0, srv.PID(), "no live process after exit")

	err := srv.Signal(syscall.SIGTERM)
	require.Error(t, err, "signalling an exited server must fail")
}

func TestServerRunInheritProcessGroup(t *testing.T) {
	// A child sharing the terminal must stay in the launcher's process
	// group: a background group reading the tty is stopped by SIGTTIN
	// before its console ever works.
	srv := launcher.NewServer(stubConfig(t, `trap 'kill $!; exit 0' TERM
touch ready
sleep 10 &
wait
exit 1`))

	done := make(chan error, 1)
	go func() {
		_, err := srv.Run()
		done <- err
	}()

	ready := filepath.Join(srv.Config.ServerDir, "ready")
	require.Eventually(t, func() bool {
		_, err := os.Stat(ready)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond, "server never signalled readiness")

	childPgid, err := syscall.Getpgid(srv.PID())
	require.NoError(t, err)
	selfPgid, err := syscall.Getpgid(os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, selfPgid, childPgid)

	require.NoError(t, srv.Stop())
	require.NoError(t, <-done)
}
