package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	// Local development keeps credentials in .env; absence is fine
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "briefhub",
		Usage: "Structured brief generation service",
		Commands: []*cli.Command{
			serveCommand(),
			newCommand(),
			listCommand(),
			showCommand(),
			deleteCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		logging.Default().Error("command failed", "error", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
