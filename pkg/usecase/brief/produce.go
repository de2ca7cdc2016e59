package brief

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Produce turns source text into a stored Brief exactly once per distinct
// input within a session. The second return value reports whether a new
// brief was created (false when a duplicate submission returned the prior
// brief unchanged).
//
// Pipeline: validate input, fingerprint, duplicate lookup, generate,
// assemble, persist. On a duplicate hit no model call and no write happen.
func (u *UseCase) Produce(ctx context.Context, sourceText string, session model.SessionID) (*model.Brief, bool, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, false, goerr.Wrap(model.ErrInvalidInput, "source text is empty")
	}
	if n := utf8.RuneCountInString(sourceText); n > u.maxSourceTextLen {
		return nil, false, goerr.Wrap(model.ErrInvalidInput, "source text exceeds maximum length",
			goerr.V("length", n), goerr.V("max", u.maxSourceTextLen))
	}
	if err := session.Validate(); err != nil {
		return nil, false, err
	}

	fingerprint := model.Fingerprint(sourceText)

	if existing := u.findExisting(ctx, session, fingerprint); existing != nil {
		logging.From(ctx).Info("returning existing brief for duplicate content",
			"brief_id", existing.ID, "fingerprint", fingerprint)
		return existing, false, nil
	}

	content, err := u.generate(ctx, sourceText)
	if err != nil {
		return nil, false, err
	}

	brief := &model.Brief{
		ID:          model.NewBriefID(),
		SessionID:   session,
		SourceText:  sourceText,
		Summary:     content.Summary,
		Decisions:   content.Decisions,
		Actions:     content.Actions,
		Questions:   content.Questions,
		Fingerprint: fingerprint,
		CreatedAt:   time.Now(),
	}

	if err := u.repo.PutBrief(ctx, brief); err != nil {
		return nil, false, goerr.Wrap(model.ErrStorageFailed, "failed to save brief", goerr.V("cause", err))
	}

	logging.From(ctx).Info("created brief", "brief_id", brief.ID, "session_id", session)
	return brief, true, nil
}
