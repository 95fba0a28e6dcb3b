// Package cmd provides CLI commands for the mslc binary.
// This file defines the "check" subcommand that validates a launch
// configuration without starting the server.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/OrzMiku/minecraft-server-launcher-core/interfaces/iconsole"
	"github.com/OrzMiku/minecraft-server-launcher-core/internal/logging"
)

var flagYAML bool

// launchPlan is the machine-readable output of check --yaml.
type launchPlan struct {
	Java        string   `yaml:"java"`
	JavaVersion string   `yaml:"java_version"`
	Command     []string `yaml:"command"`
	Dir         string   `yaml:"dir"`
	Console     string   `yaml:"console"`
}

// CheckCmd validates a launch configuration and reports the plan.
var CheckCmd = &cobra.Command{
	Use:   "check [profile]",
	Short: "Validate a server launch configuration",
	Long:  `Runs the full launch validation (paths, java probe) and reports the command that run would execute, without starting the server.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, mode, err := resolve(cmd, args)
		if err != nil {
			return err
		}
		if _, err := iconsole.New(mode); err != nil {
			return err
		}

		if flagYAML {
			out, err := yaml.Marshal(launchPlan{
				Java:        cfg.JavaPath,
				JavaVersion: cfg.JavaVersion,
				Command:     cfg.Command().Args,
				Dir:         cfg.ServerDir,
				Console:     mode,
			})
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		}

		logging.Log.Infof("Java:     %s (%s)\nCommand:  %s\nDir:      %s\nConsole:  %s\n",
			cfg.JavaPath, cfg.JavaVersion,
			strings.Join(cfg.Command().Args, " "), cfg.ServerDir, mode)
		return nil
	},
}

func init() {
	addLaunchFlags(CheckCmd)
	CheckCmd.Flags().BoolVar(&flagYAML, "yaml", false, "Print the launch plan as YAML on stdout")
}
