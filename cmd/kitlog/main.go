package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kitlog-inc/kitlog/internal/interfaces/cli/migrate"
	"github.com/kitlog-inc/kitlog/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kitlog",
		Short: "Kitlog - device inventory tracker",
		Long:  `Kitlog is a device inventory tracking service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
