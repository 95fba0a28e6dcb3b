package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesYAML = `default: survival
servers:
  survival:
    dir: /srv/survival
    jar: paper.jar
    java: /opt/jdk21/bin/java
    java_args: ["-Xms2G", "-Xmx8G"]
    headless: true
    console: proxy
  creative:
    dir: /srv/creative
    jar: server.jar
`

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servers.yaml")
	writeFile(t, path, content)
	return path
}

func TestLoadProfilesFile(t *testing.T) {
	p, err := LoadProfilesFile(writeProfiles(t, profilesYAML))
	require.NoError(t, err)

	assert.Equal(t, "survival", p.Default)
	require.Len(t, p.Servers, 2)

	survival := p.Servers["survival"]
	assert.Equal(t, "/srv/survival", survival.Dir)
	assert.Equal(t, "paper.jar", survival.Jar)
	assert.Equal(t, "/opt/jdk21/bin/java", survival.Java)
	assert.Equal(t, []string{"-Xms2G", "-Xmx8G"}, survival.JavaArgs)
	require.NotNil(t, survival.Headless)
	assert.True(t, *survival.Headless)
	assert.Equal(t, "proxy", survival.Console)

	creative := p.Servers["creative"]
	assert.Nil(t, creative.Headless, "absent headless stays unset")
	assert.Empty(t, creative.Console)
}

func TestLoadProfilesFileBadYAML(t *testing.T) {
	_, err := LoadProfilesFile(writeProfiles(t, "servers: ["))
	require.Error(t, err)
}

func TestLoadProfilesMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	p, err := LoadProfiles()
	require.NoError(t, err, "no servers.yaml anywhere is not an error")
	assert.Empty(t, p.Default)
	assert.Empty(t, p.Servers)
}

func TestLoadProfilesEnvDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "servers.yaml"), profilesYAML)
	t.Setenv("MSLC_CONFIG_DIR", dir)

	p, err := LoadProfiles()
	require.NoError(t, err)
	assert.Equal(t, "survival", p.Default)
}

func TestLoadProfilesEnvDirMissingFile(t *testing.T) {
	t.Setenv("MSLC_CONFIG_DIR", t.TempDir())

	p, err := LoadProfiles()
	require.NoError(t, err, "an override dir without servers.yaml is not an error")
	assert.Empty(t, p.Servers)
}

func TestProfilesLookup(t *testing.T) {
	p, err := LoadProfilesFile(writeProfiles(t, profilesYAML))
	require.NoError(t, err)

	byName, err := p.Lookup("creative")
	require.NoError(t, err)
	assert.Equal(t, "/srv/creative", byName.Dir)

	byDefault, err := p.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/survival", byDefault.Dir)

	_, err = p.Lookup("hardcore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hardcore")

	empty := &Profiles{}
	_, err = empty.Lookup("")
	require.Error(t, err)
}

func TestProfileApply(t *testing.T) {
	var base Config
	base.Server.Dir = "/base/dir"
	base.Server.Jar = "base.jar"
	base.Server.Headless = true
	base.Java.Path = "java"
	base.Java.Args = []string{"-Xmx1G"}
	base.Console.Mode = "inherit"

	headless := false
	prof := Profile{Jar: "prof.jar", Headless: &headless}
	prof.Apply(&base)

	assert.Equal(t, "/base/dir", base.Server.Dir, "unset fields keep base values")
	assert.Equal(t, "prof.jar", base.Server.Jar)
	assert.False(t, base.Server.Headless, "an explicit false must override")
	assert.Equal(t, "java", base.Java.Path)
	assert.Equal(t, []string{"-Xmx1G"}, base.Java.Args)
	assert.Equal(t, "inherit", base.Console.Mode)
}

func TestProfileApplyEmptyChangesNothing(t *testing.T) {
	var base Config
	base.Server.Dir = "/base/dir"
	base.Server.Headless = true
	base.Console.Mode = "proxy"

	Profile{}.Apply(&base)

	assert.Equal(t, "/base/dir", base.Server.Dir)
	assert.True(t, base.Server.Headless)
	assert.Equal(t, "proxy", base.Console.Mode)
}

func TestProfileApplyFull(t *testing.T) {
	var base Config
	base.Server.Jar = "base.jar"

	headless := true
	prof := Profile{
		Dir:      "/srv/new",
		Jar:      "new.jar",
		Java:     "/opt/jdk/bin/java",
		JavaArgs: []string{"-Xmx16G"},
		Headless: &headless,
		Console:  "proxy",
	}
	prof.Apply(&base)

	assert.Equal(t, "/srv/new", base.Server.Dir)
	assert.Equal(t, "new.jar", base.Server.Jar)
	assert.Equal(t, "/opt/jdk/bin/java", base.Java.Path)
	assert.Equal(t, []string{"-Xmx16G"}, base.Java.Args)
	assert.True(t, base.Server.Headless)
	assert.Equal(t, "proxy", base.Console.Mode)
}
