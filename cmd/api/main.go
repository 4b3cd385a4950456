// Package main is the entry point for the Trip Packer API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "trip-packer",
	Short:         "Trip Packer API: trips, bags, items and packing lists",
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running the binary without a subcommand starts the server.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Use plain stderr if the logger was never configured.
		slog.Error("trip-packer", "error", err)
		os.Exit(1)
	}
}
