// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/texargs/internal/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage texargs configuration",
		Long:  `Commands for viewing and clearing texargs configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars lists the environment variables that override the config file.
var envVars = []string{"TEXARGS_OUTPUT", "TEXARGS_INCLUDE_UNKNOWN", "TEXARGS_UNKNOWN_ARITY"}

func resolvePath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.DefaultConfigPath()
	}
	return path
}
