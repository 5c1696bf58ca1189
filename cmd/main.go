package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/peerview/peerview/cmd/command"
	"github.com/peerview/peerview/internal/config"
)

// main is the entry point of the application.
func main() {
	const description = "peerview"
	root := &cobra.Command{Use: "peerview", Short: description}

	peersCmd := command.NewPeersCmd()
	var viewCmd command.ViewCmd

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	root.AddCommand(
		viewCmd.Command(cfg),
		peersCmd.Command(cfg),
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("failed to execute root command: \n%v", err)
	}
}
