package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/crm/internal/server"
)

// crm serve: start the HTTP server with workers and scheduler in-process.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}
