package cmd

import (
	"fmt"
	"log"
	"os"

	"Moosic/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moosic_server",
	Short: "Moosic is a mood tracking and mood therapy service.",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("Starting Moosic server...")
		// server.Start handles its own port and logging for startup.
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
