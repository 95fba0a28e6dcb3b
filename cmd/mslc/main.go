// Command mslc builds a validated java launch command for a Minecraft
// server and runs it with the console attached or proxied. Server
// locations come from launcher.yaml, named profiles in servers.yaml,
// and command-line flags, in that order of precedence.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/OrzMiku/minecraft-server-launcher-core/cmd/mslc/cmd"
	"github.com/OrzMiku/minecraft-server-launcher-core/internal/config"
	"github.com/OrzMiku/minecraft-server-launcher-core/internal/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "mslc",
	Short:         "Configure and launch a Minecraft server",
	Long:          `mslc validates a server launch configuration and runs the server as a child process, sharing or proxying its console.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := logging.Init(cfg.Log); err != nil {
			return err
		}
		cmd.Cfg = cfg
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Log.Errorf("[mslc] error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to launcher.yaml (default: search ~/.mslc, ., /etc/mslc)")
	rootCmd.AddCommand(cmd.RunCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
