package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/briefhub/pkg/model"
)

// Memory is an in-process Repository used by tests and mock mode
type Memory struct {
	mu     sync.RWMutex
	briefs map[model.BriefID]*model.Brief
}

func NewMemory() *Memory {
	return &Memory{
		briefs: make(map[model.BriefID]*model.Brief),
	}
}

func (r *Memory) PutBrief(ctx context.Context, brief *model.Brief) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *brief
	r.briefs[brief.ID] = &copied
	return nil
}

func (r *Memory) GetBrief(ctx context.Context, id model.BriefID, session model.SessionID) (*model.Brief, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	brief, ok := r.briefs[id]
	if !ok || brief.SessionID != session {
		return nil, nil
	}

	copied := *brief
	return &copied, nil
}

func (r *Memory) DeleteBrief(ctx context.Context, id model.BriefID, session model.SessionID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	brief, ok := r.briefs[id]
	if !ok || brief.SessionID != session {
		return false, nil
	}

	delete(r.briefs, id)
	return true, nil
}

func (r *Memory) SupportsCompoundQueries() bool {
	return true
}

func (r *Memory) FindBySessionAndFingerprint(ctx context.Context, session model.SessionID, fingerprint string) (*model.Brief, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, brief := range r.briefs {
		if brief.SessionID == session && brief.Fingerprint == fingerprint {
			copied := *brief
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *Memory) ListByFingerprint(ctx context.Context, fingerprint string) ([]*model.Brief, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var briefs []*model.Brief
	for _, brief := range r.briefs {
		if brief.Fingerprint == fingerprint {
			copied := *brief
			briefs = append(briefs, &copied)
		}
	}
	return briefs, nil
}

func (r *Memory) ListRecent(ctx context.Context, session model.SessionID, limit int) ([]*model.Brief, error) {
	briefs, err := r.ListBySession(ctx, session)
	if err != nil {
		return nil, err
	}

	model.SortByCreatedAtDesc(briefs)
	if len(briefs) > limit {
		briefs = briefs[:limit]
	}
	return briefs, nil
}

func (r *Memory) ListBySession(ctx context.Context, session model.SessionID) ([]*model.Brief, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var briefs []*model.Brief
	for _, brief := range r.briefs {
		if brief.SessionID == session {
			copied := *brief
			briefs = append(briefs, &copied)
		}
	}
	return briefs, nil
}
