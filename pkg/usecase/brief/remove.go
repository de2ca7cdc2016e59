package brief

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Remove deletes a brief scoped to a session. Returns false when the brief
// is absent or owned by another session, without distinguishing the two.
func (u *UseCase) Remove(ctx context.Context, id model.BriefID, session model.SessionID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := session.Validate(); err != nil {
		return false, err
	}

	deleted, err := u.repo.DeleteBrief(ctx, id, session)
	if err != nil {
		return false, goerr.Wrap(model.ErrStorageFailed, "failed to delete brief", goerr.V("cause", err))
	}

	if deleted {
		logging.From(ctx).Info("deleted brief", "brief_id", id, "session_id", session)
	}
	return deleted, nil
}
