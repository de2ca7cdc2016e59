package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newCommand() *cli.Command {
	var (
		cfg       config
		sessionID string
		inputPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session UUID the brief belongs to",
			Sources:     cli.EnvVars("BRIEFHUB_SESSION"),
			Destination: &sessionID,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to text file to analyze (- for stdin)",
			Value:       "-",
			Sources:     cli.EnvVars("BRIEFHUB_INPUT"),
			Destination: &inputPath,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "new",
		Usage: "Generate a brief from source text",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx, os.Stderr)

			var (
				data []byte
				err  error
			)
			if inputPath == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(inputPath)
			}
			if err != nil {
				return goerr.Wrap(err, "failed to read source text", goerr.V("path", inputPath))
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			llm, err := cfg.newLLM(ctx)
			if err != nil {
				return err
			}

			uc := brief.New(repo, llm)

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			sp.Suffix = " Generating brief..."
			sp.Start()
			result, created, err := uc.Produce(ctx, string(data), model.SessionID(sessionID))
			sp.Stop()
			if err != nil {
				return goerr.Wrap(err, "failed to produce brief")
			}

			if !created {
				fmt.Fprintln(c.Root().Writer, "Duplicate content, returning existing brief:")
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
