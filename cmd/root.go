// Package cmd defines the CLI commands for the tibia-api executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tibia-api",
		Short: "A REST API over the tibia.com community pages",
		Long: `tibia-api serves a JSON REST API backed by the public tibia.com
community pages. It fetches pages on demand, extracts worlds, guilds,
kill statistics, residences and characters, and exposes them as typed
JSON resources.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")

	cmd.AddCommand(newServeCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
