package brief

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ListRecent returns up to limit brief summaries for a session, newest
// first. A limit of 0 means the default. When the store cannot serve the
// ordered compound query, the full session listing is fetched and sorted
// locally.
func (u *UseCase) ListRecent(ctx context.Context, session model.SessionID, limit int) ([]*model.BriefSummary, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = model.DefaultListLimit
	}
	if limit < 1 || limit > model.MaxListLimit {
		return nil, goerr.Wrap(model.ErrInvalidInput, "limit out of range",
			goerr.V("limit", limit), goerr.V("max", model.MaxListLimit))
	}

	if u.repo.SupportsCompoundQueries() {
		briefs, err := u.repo.ListRecent(ctx, session, limit)
		if err == nil {
			return toSummaries(briefs), nil
		}
		logging.From(ctx).Warn("ordered listing failed, falling back to local sort", "error", err)
	}

	briefs, err := u.repo.ListBySession(ctx, session)
	if err != nil {
		return nil, goerr.Wrap(model.ErrStorageFailed, "failed to list briefs", goerr.V("cause", err))
	}

	model.SortByCreatedAtDesc(briefs)
	if len(briefs) > limit {
		briefs = briefs[:limit]
	}
	return toSummaries(briefs), nil
}

func toSummaries(briefs []*model.Brief) []*model.BriefSummary {
	summaries := make([]*model.BriefSummary, 0, len(briefs))
	for _, b := range briefs {
		summaries = append(summaries, b.ToSummary())
	}
	return summaries
}
