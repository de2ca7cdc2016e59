package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var (
		cfg       config
		sessionID string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session UUID owning the brief",
			Sources:     cli.EnvVars("BRIEFHUB_SESSION"),
			Destination: &sessionID,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a brief by ID",
		ArgsUsage: "<brief-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx, os.Stderr)

			briefID := c.Args().First()
			if briefID == "" {
				return goerr.New("brief ID is required")
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := brief.New(repo, nil)

			deleted, err := uc.Remove(ctx, model.BriefID(briefID), model.SessionID(sessionID))
			if err != nil {
				return goerr.Wrap(err, "failed to delete brief")
			}
			if !deleted {
				return goerr.New("brief not found", goerr.V("brief_id", briefID))
			}

			fmt.Fprintf(c.Root().Writer, "Brief deleted: %s\n", briefID)
			return nil
		},
	}
}
