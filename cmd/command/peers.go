package command

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peerview/peerview/internal/client"
	"github.com/peerview/peerview/internal/config"
	"github.com/peerview/peerview/internal/logWriter"
	"github.com/peerview/peerview/internal/project"
)

// PeersCmd prints the peer list of a project without starting the TUI.
type PeersCmd struct{}

func NewPeersCmd() *PeersCmd {
	return &PeersCmd{}
}

func (pc *PeersCmd) Command(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peers",
		Short: "List the peers publishing revisions of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			urn, err := cmd.Flags().GetString("urn")
			if err != nil {
				return err
			}
			if urn != "" {
				cfg.ProjectURN = urn
			}
			if cfg.ProjectURN == "" {
				return fmt.Errorf("no project URN: pass --urn or set PROJECT_URN")
			}
			return pc.run(cfg)
		},
	}
	cmd.Flags().String("urn", "", "project URN (defaults to PROJECT_URN)")
	return cmd
}

func (pc *PeersCmd) run(cfg *config.Config) error {
	log := logWriter.New(os.Stdout, false, cfg.Silent)

	c, err := client.New(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.RequestTimeout)
	defer cancel()

	session, err := c.Session(ctx)
	if err != nil {
		return err
	}
	proj, err := c.Project(ctx, cfg.ProjectURN)
	if err != nil {
		return err
	}
	revs, err := c.Revisions(ctx, cfg.ProjectURN)
	if err != nil {
		return err
	}

	selected, _, err := project.SelectRevision(revs, "")
	if err != nil {
		return err
	}

	log.Highlightf("%s: %d peers", proj.Name, len(revs))
	for _, rev := range revs {
		id := rev.Identity
		line := fmt.Sprintf("%s (%s) %s, %d branches", id.Handle, id.PeerID, project.RoleOf(proj, id), len(rev.Branches))
		switch {
		case project.IsLocal(session, id.PeerID):
			log.Successf("%s [you]", line)
		case rev.ID == selected.ID:
			log.Infof("%s [default]", line)
		default:
			log.Infof("%s", line)
		}
	}
	return nil
}
