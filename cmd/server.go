package cmd

import (
	"Moosic/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Moosic HTTP server",
	Long:  `Start the HTTP server of the Moosic mood tracking system, serving the REST API consumed by the web client`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
