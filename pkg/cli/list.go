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

func listCommand() *cli.Command {
	var (
		cfg       config
		sessionID string
		limit     int64
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session UUID to list briefs for",
			Sources:     cli.EnvVars("BRIEFHUB_SESSION"),
			Destination: &sessionID,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of briefs to list",
			Value:       int64(model.DefaultListLimit),
			Sources:     cli.EnvVars("BRIEFHUB_LIST_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List recent briefs for a session",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx, os.Stderr)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := brief.New(repo, nil)

			summaries, err := uc.ListRecent(ctx, model.SessionID(sessionID), int(limit))
			if err != nil {
				return goerr.Wrap(err, "failed to list briefs")
			}

			for _, s := range summaries {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\td:%d a:%d q:%d\t%s\n",
					s.ID, s.CreatedAt.Format("2006-01-02 15:04"),
					s.DecisionCount, s.ActionCount, s.QuestionCount, s.Summary)
			}

			return nil
		},
	}
}
