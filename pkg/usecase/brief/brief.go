package brief

import (
	"github.com/m-mizutani/briefhub/pkg/adapter"
	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/repository"
)

// UseCase provides brief generation and management operations
type UseCase struct {
	repo             repository.Repository
	llm              adapter.LLM
	maxSourceTextLen int
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithMaxSourceTextLen overrides the maximum accepted source text length
func WithMaxSourceTextLen(n int) Option {
	return func(uc *UseCase) {
		uc.maxSourceTextLen = n
	}
}

// New creates a new brief UseCase instance
func New(
	repo repository.Repository,
	llm adapter.LLM,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		repo:             repo,
		llm:              llm,
		maxSourceTextLen: model.DefaultMaxSourceTextLen,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
