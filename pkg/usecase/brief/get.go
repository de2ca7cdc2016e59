package brief

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// Get retrieves a brief by ID scoped to a session. Returns (nil, nil) when
// the brief is absent or owned by another session; the two cases are not
// distinguishable by the caller.
func (u *UseCase) Get(ctx context.Context, id model.BriefID, session model.SessionID) (*model.Brief, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	brief, err := u.repo.GetBrief(ctx, id, session)
	if err != nil {
		return nil, goerr.Wrap(model.ErrStorageFailed, "failed to get brief", goerr.V("cause", err))
	}
	return brief, nil
}
