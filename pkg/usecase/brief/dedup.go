package brief

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
)

// findExisting is the deduplication gate. Two-tier lookup: the compound
// (session, fingerprint) query when the store supports compound queries,
// otherwise a fingerprint-only query filtered by session locally. The same
// fallback applies when the compound query fails at runtime (typically a
// missing composite index), so dedup keeps working under a partially
// configured store.
//
// Best-effort: a failure of the fallback tier logs and reports no duplicate
// rather than failing the request.
func (u *UseCase) findExisting(ctx context.Context, session model.SessionID, fingerprint string) *model.Brief {
	if u.repo.SupportsCompoundQueries() {
		existing, err := u.repo.FindBySessionAndFingerprint(ctx, session, fingerprint)
		if err == nil {
			return existing
		}
		logging.From(ctx).Warn("compound duplicate lookup failed, falling back to fingerprint-only query",
			"error", err)
	}

	briefs, err := u.repo.ListByFingerprint(ctx, fingerprint)
	if err != nil {
		logging.From(ctx).Warn("duplicate lookup failed, proceeding without dedup", "error", err)
		return nil
	}

	for _, b := range briefs {
		if b.SessionID == session {
			return b
		}
	}
	return nil
}
