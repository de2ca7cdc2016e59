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

func exportCommand() *cli.Command {
	var (
		cfg        config
		sessionID  string
		bucketName string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session UUID owning the brief",
			Sources:     cli.EnvVars("BRIEFHUB_SESSION"),
			Destination: &sessionID,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Aliases:     []string{"b"},
			Usage:       "Cloud Storage bucket to export to",
			Sources:     cli.EnvVars("BRIEFHUB_EXPORT_BUCKET"),
			Destination: &bucketName,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "export",
		Usage:     "Export a brief as JSON to Cloud Storage",
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

			storage, err := cfg.newStorage(ctx, bucketName)
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

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode brief")
			}

			key := fmt.Sprintf("briefs/%s.json", result.ID)
			w, err := storage.Put(ctx, key)
			if err != nil {
				return goerr.Wrap(err, "failed to open storage object", goerr.V("key", key))
			}
			if _, err := w.Write(data); err != nil {
				_ = w.Close()
				return goerr.Wrap(err, "failed to write brief to storage", goerr.V("key", key))
			}
			if err := w.Close(); err != nil {
				return goerr.Wrap(err, "failed to finalize storage object", goerr.V("key", key))
			}

			fmt.Fprintf(c.Root().Writer, "Exported brief %s to gs://%s/%s\n", result.ID, bucketName, key)
			return nil
		},
	}
}
