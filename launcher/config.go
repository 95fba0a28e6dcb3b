package launcher

import "os/exec"

// DefaultJavaCommand is the java executable used when no explicit path
// is configured. The operating system resolves it through PATH.
const DefaultJavaCommand = "java"

// Config is a validated launch description produced by Build. Fields are
// exported so a caller who wants to skip validation can assemble one
// directly.
type Config struct {
	ServerDir   string   // working directory of the server process
	ServerJar   string   // jar path handed to -jar, relative to ServerDir
	JavaPath    string   // java executable, command name or absolute path
	JavaArgs    []string // JVM arguments, inserted before -jar
	Headless    bool     // append --nogui so the server skips its GUI
	JavaVersion string   // first banner line captured by the probe
}

// Command assembles the launch command `<java> [args...] -jar <jar>`,
// plus a trailing `--nogui` when headless. The child runs in ServerDir.
// Process-group placement is left to the console mode attaching the
// streams.
func (c *Config) Command() *exec.Cmd {
	args := make([]string, 0, len(c.JavaArgs)+3)
	args = append(args, c.JavaArgs...)
	args = append(args, "-jar", c.ServerJar)
	if c.Headless {
		args = append(args, "--nogui")
	}

	cmd := exec.Command(c.JavaPath, args...)
	cmd.Dir = c.ServerDir
	return cmd
}
