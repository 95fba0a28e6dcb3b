package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes one named server in servers.yaml. Headless is a
// pointer so an absent key does not clobber the base config during
// overlay.
type Profile struct {
	Dir      string   `yaml:"dir"`       // server working directory
	Jar      string   `yaml:"jar"`       // jar path relative to dir
	Java     string   `yaml:"java"`      // java binary for this server
	JavaArgs []string `yaml:"java_args"` // JVM arguments for this server
	Headless *bool    `yaml:"headless"`  // run without the server GUI
	Console  string   `yaml:"console"`   // console mode for this server
}

// Profiles is the schema of servers.yaml: an optional default profile
// name plus the named profiles.
type Profiles struct {
	Default string             `yaml:"default"`
	Servers map[string]Profile `yaml:"servers"`
}

// LoadProfiles reads servers.yaml from the resolved config location.
// A missing file yields an empty profile set.
func LoadProfiles() (*Profiles, error) {
	path, err := ResolveConfigPath("servers.yaml")
	if err != nil {
		return &Profiles{}, nil
	}
	return LoadProfilesFile(path)
}

// LoadProfilesFile reads a profile set from a specific file.
func LoadProfilesFile(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	return &p, nil
}

// Lookup returns the named profile, falling back to the default profile
// when name is empty.
func (p *Profiles) Lookup(name string) (Profile, error) {
	if name == "" {
		name = p.Default
	}
	if name == "" {
		return Profile{}, fmt.Errorf("no profile requested and no default set")
	}
	prof, ok := p.Servers[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown server profile: %s", name)
	}
	return prof, nil
}

// Apply overlays the profile's set fields onto cfg. Unset fields leave
// the base values alone.
func (p Profile) Apply(cfg *Config) {
	if p.Dir != "" {
		cfg.Server.Dir = p.Dir
	}
	if p.Jar != "" {
		cfg.Server.Jar = p.Jar
	}
	if p.Java != "" {
		cfg.Java.Path = p.Java
	}
	if len(p.JavaArgs) > 0 {
		cfg.Java.Args = p.JavaArgs
	}
	if p.Headless != nil {
		cfg.Server.Headless = *p.Headless
	}
	if p.Console != "" {
		cfg.Console.Mode = p.Console
	}
}
