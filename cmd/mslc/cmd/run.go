// Package cmd provides CLI commands for the mslc binary.
// This file defines the "run" subcommand that launches a server and
// blocks until it exits.
package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/OrzMiku/minecraft-server-launcher-core/interfaces/iconsole"
	"github.com/OrzMiku/minecraft-server-launcher-core/internal/config"
	"github.com/OrzMiku/minecraft-server-launcher-core/internal/logging"
	"github.com/OrzMiku/minecraft-server-launcher-core/launcher"
)

// Cfg is the resolved launcher configuration. Main sets it before any
// subcommand runs.
var Cfg *config.Config

var (
	flagDir      string
	flagJar      string
	flagJava     string
	flagJavaArgs []string
	flagHeadless bool
	flagConsole  string
)

// RunCmd launches a configured server and attaches its console.
var RunCmd = &cobra.Command{
	Use:   "run [profile]",
	Short: "Launch a server and attach its console",
	Long: `Launches the configured server and blocks until it exits.

Examples:
  mslc run                      # settings from launcher.yaml
  mslc run survival             # the "survival" profile from servers.yaml
  mslc run --headless --console proxy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, mode, err := resolve(cmd, args)
		if err != nil {
			return err
		}

		console, err := iconsole.New(mode)
		if err != nil {
			return err
		}

		srv := launcher.NewServer(cfg)
		srv.Console = console

		launchID := uuid.NewString()
		logging.Log.Infof("[run] Launch %s: %s via %s", launchID, cfg.ServerJar, cfg.JavaVersion)
		logging.Log.Infof("[run] Command: %s (dir %s, console %s)",
			strings.Join(cfg.Command().Args, " "), cfg.ServerDir, mode)

		// Relay termination signals to the server so it saves and exits
		// on its own; the run then ends through the normal wait path.
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			for sig := range sigChan {
				logging.Log.Infof("[run] Relaying %v to server (PID %d)", sig, srv.PID())
				_ = srv.Signal(sig)
			}
		}()

		code, err := srv.Run()
		if err != nil {
			return err
		}
		logging.Log.Infof("[run] Launch %s: server exited with code %d", launchID, code)
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

// addLaunchFlags registers the shared launch override flags on a command.
func addLaunchFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagDir, "dir", "", "Server working directory")
	c.Flags().StringVar(&flagJar, "jar", "", "Server jar, relative to the server directory")
	c.Flags().StringVar(&flagJava, "java", "", "Java binary to launch with")
	c.Flags().StringArrayVar(&flagJavaArgs, "java-arg", nil, "JVM argument, repeatable")
	c.Flags().BoolVar(&flagHeadless, "headless", false, "Run without the server GUI (--nogui)")
	c.Flags().StringVar(&flagConsole, "console", "", "Console mode: inherit or proxy")
}

// resolve folds profile and flag overrides onto the base configuration
// and builds the validated launch config. Precedence is launcher.yaml,
// then the profile, then command-line flags.
func resolve(cmd *cobra.Command, args []string) (*launcher.Config, string, error) {
	base := *Cfg

	profiles, err := config.LoadProfiles()
	if err != nil {
		return nil, "", err
	}
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name != "" || profiles.Default != "" {
		prof, err := profiles.Lookup(name)
		if err != nil {
			return nil, "", err
		}
		prof.Apply(&base)
	}

	if cmd.Flags().Changed("dir") {
		base.Server.Dir = flagDir
	}
	if cmd.Flags().Changed("jar") {
		base.Server.Jar = flagJar
	}
	if cmd.Flags().Changed("java") {
		base.Java.Path = flagJava
	}
	if cmd.Flags().Changed("java-arg") {
		base.Java.Args = flagJavaArgs
	}
	if cmd.Flags().Changed("headless") {
		base.Server.Headless = flagHeadless
	}
	if cmd.Flags().Changed("console") {
		base.Console.Mode = flagConsole
	}

	b := launcher.NewBuilder().
		ServerDir(base.Server.Dir).
		ServerJar(base.Server.Jar).
		JavaArgs(base.Java.Args...).
		Headless(base.Server.Headless)
	if base.Java.Path != "" {
		b.JavaPath(base.Java.Path)
	}
	cfg, err := b.Build()
	if err != nil {
		return nil, "", err
	}
	return cfg, base.Console.Mode, nil
}

func init() {
	addLaunchFlags(RunCmd)
}
