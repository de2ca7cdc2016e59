package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/briefhub/pkg/adapter"
	"github.com/m-mizutani/briefhub/pkg/repository"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	// Repository
	project         string
	database        string
	noCompoundQuery bool

	// Adapters
	geminiAPIKey string
	geminiModel  string

	// Mode
	mock     bool
	logLevel string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("GCP_PROJECT_ID"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.BoolFlag{
			Name:        "no-compound-queries",
			Usage:       "Assume the composite Firestore indexes are absent and always filter/sort locally",
			Sources:     cli.EnvVars("BRIEFHUB_NO_COMPOUND_QUERIES"),
			Destination: &cfg.noCompoundQuery,
		},
		&cli.BoolFlag{
			Name:        "mock",
			Usage:       "Use the in-memory store and mock model (local development)",
			Sources:     cli.EnvVars("BRIEFHUB_MOCK"),
			Destination: &cfg.mock,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("BRIEFHUB_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// llmFlags returns flags for LLM-related configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini generative model",
			Sources:     cli.EnvVars("GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
	}
}

// setupLogger installs the configured logger as default and into the context
func (cfg *config) setupLogger(ctx context.Context, w io.Writer) context.Context {
	if w == nil {
		w = os.Stdout
	}
	logger := logging.New(cfg.logLevel, w)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newRepository creates the repository once; it is reused for the process
func (cfg *config) newRepository(ctx context.Context) (repository.Repository, error) {
	if cfg.mock {
		return repository.NewMemory(), nil
	}

	if cfg.project == "" {
		return nil, goerr.New("project is required")
	}
	if cfg.database == "" {
		return nil, goerr.New("database is required")
	}

	var opts []repository.FirestoreOption
	if cfg.noCompoundQuery {
		opts = append(opts, repository.WithoutCompoundQueries())
	}

	repo, err := repository.New(ctx, cfg.project, cfg.database, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}

// newLLM creates the language model adapter
func (cfg *config) newLLM(ctx context.Context) (adapter.LLM, error) {
	if cfg.mock {
		return adapter.NewMockLLM(), nil
	}

	if cfg.geminiAPIKey == "" {
		return nil, goerr.New("gemini-api-key is required")
	}

	var opts []adapter.GeminiOption
	if cfg.geminiModel != "" {
		opts = append(opts, adapter.WithGenerativeModel(cfg.geminiModel))
	}

	llm, err := adapter.NewGemini(ctx, cfg.geminiAPIKey, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create gemini client")
	}
	return llm, nil
}

// newStorage creates a Cloud Storage adapter for brief export
func (cfg *config) newStorage(ctx context.Context, bucketName string) (adapter.Storage, error) {
	if bucketName == "" {
		return nil, goerr.New("bucket name is required")
	}

	storage, err := adapter.NewStorage(ctx, bucketName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage")
	}
	return storage, nil
}
