// Package command wires the cobra subcommands.
package command

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/peerview/peerview/internal/config"
	"github.com/peerview/peerview/internal/logWriter"
	"github.com/peerview/peerview/internal/tui"
)

// ViewCmd starts the TUI.
type ViewCmd struct{}

func (vc *ViewCmd) Command(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a project and its peers in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			urn, err := cmd.Flags().GetString("urn")
			if err != nil {
				return err
			}
			if urn != "" {
				cfg.ProjectURN = urn
			}
			return vc.startTUI(cfg)
		},
	}
	cmd.Flags().String("urn", "", "project URN (defaults to PROJECT_URN)")
	return cmd
}

func (vc *ViewCmd) startTUI(cfg *config.Config) error {
	log, closeLog, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := tui.InitialModel(cfg, log)
	if err != nil {
		return err
	}
	m.LogWriter.Infof("starting the application...")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// tuiLogger returns a logger that stays off the terminal while the TUI owns
// it: a log file when configured, otherwise discarded.
func tuiLogger(cfg *config.Config) (*logWriter.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logWriter.New(io.Discard, false, true), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return logWriter.New(f, true, cfg.Silent), func() { f.Close() }, nil
}
