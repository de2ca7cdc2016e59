package repository

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
)

// Repository defines the interface for brief persistence. Ownership checks
// (session scoping) are part of the contract: a brief that exists but belongs
// to another session is indistinguishable from an absent one.
type Repository interface {
	// PutBrief saves a brief. All fields are assigned by the caller before
	// the call; the store adds nothing.
	PutBrief(ctx context.Context, brief *model.Brief) error

	// GetBrief retrieves a brief by ID scoped to a session. Returns
	// (nil, nil) when the brief is absent or owned by another session.
	GetBrief(ctx context.Context, id model.BriefID, session model.SessionID) (*model.Brief, error)

	// DeleteBrief removes a brief scoped to a session. Returns false when
	// the brief is absent or owned by another session.
	DeleteBrief(ctx context.Context, id model.BriefID, session model.SessionID) (bool, error)

	// SupportsCompoundQueries reports whether the store can answer queries
	// that filter or order on more than one field. When false (or when a
	// compound query fails), callers use the single-field methods below
	// and filter or sort locally.
	SupportsCompoundQueries() bool

	// FindBySessionAndFingerprint looks up a prior brief by the compound
	// (session, fingerprint) key. Returns (nil, nil) when none exists.
	FindBySessionAndFingerprint(ctx context.Context, session model.SessionID, fingerprint string) (*model.Brief, error)

	// ListByFingerprint retrieves all briefs with the given fingerprint
	// across sessions. Fallback tier for duplicate detection.
	ListByFingerprint(ctx context.Context, fingerprint string) ([]*model.Brief, error)

	// ListRecent retrieves up to limit briefs for a session ordered by
	// creation time descending, served by the store.
	ListRecent(ctx context.Context, session model.SessionID, limit int) ([]*model.Brief, error)

	// ListBySession retrieves all briefs for a session in no particular
	// order. Fallback tier for listing.
	ListBySession(ctx context.Context, session model.SessionID) ([]*model.Brief, error)
}
