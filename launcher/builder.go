// Package launcher builds validated launch configurations for a
// Java-based Minecraft server and runs the server as a child process,
// either sharing the parent's console or proxying it line by line.
package launcher

import "os"

// Builder accumulates launch settings through chained setters. Setters
// never validate; all checks run in Build.
type Builder struct {
	serverDir string
	serverJar string
	javaPath  string
	javaArgs  []string
	headless  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ServerDir sets the server's working directory.
func (b *Builder) ServerDir(dir string) *Builder {
	b.serverDir = dir
	return b
}

// ServerJar sets the jar path handed to -jar, relative to the server
// directory.
func (b *Builder) ServerJar(jar string) *Builder {
	b.serverJar = jar
	return b
}

// JavaPath sets the java executable to launch with. Left unset, Build
// falls back to DefaultJavaCommand.
func (b *Builder) JavaPath(path string) *Builder {
	b.javaPath = path
	return b
}

// JavaArgs sets the JVM arguments inserted before -jar. Each call
// replaces the previous list.
func (b *Builder) JavaArgs(args ...string) *Builder {
	b.javaArgs = args
	return b
}

// Headless controls whether --nogui is appended to the server arguments.
func (b *Builder) Headless(headless bool) *Builder {
	b.headless = headless
	return b
}

// Build validates the accumulated settings and produces a Config.
// Checks run in a fixed order and stop at the first failure: server
// directory set, server jar set, server directory exists, java probe
// answers. Neither the filesystem nor a process is touched before the
// presence checks pass.
func (b *Builder) Build() (*Config, error) {
	if b.serverDir == "" {
		return nil, ErrMissingServerDir
	}
	if b.serverJar == "" {
		return nil, ErrMissingServerJar
	}
	if _, err := os.Stat(b.serverDir); err != nil {
		return nil, &InvalidServerDirError{Dir: b.serverDir}
	}

	javaPath := b.javaPath
	if javaPath == "" {
		javaPath = DefaultJavaCommand
	}
	banner, err := JavaVersion(javaPath)
	if err != nil {
		return nil, &InvalidJavaPathError{JavaPath: javaPath, Err: err}
	}

	args := make([]string, len(b.javaArgs))
	copy(args, b.javaArgs)

	return &Config{
		ServerDir:   b.serverDir,
		ServerJar:   b.serverJar,
		JavaPath:    javaPath,
		JavaArgs:    args,
		Headless:    b.headless,
		JavaVersion: banner,
	}, nil
}
