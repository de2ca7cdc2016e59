package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
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
		Name:      "show",
		Usage:     "Show a brief by ID",
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

			result, err := uc.Get(ctx, model.BriefID(briefID), model.SessionID(sessionID))
			if err != nil {
				return goerr.Wrap(err, "failed to get brief")
			}
			if result == nil {
				return goerr.New("brief not found", goerr.V("brief_id", briefID))
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode brief")
			}
			fmt.Fprintln(c.Root().Writer, string(out))

			return nil
		},
	}
}
