package brief_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/gt"
)

func seedBrief(t *testing.T, repo *mockRepo, session model.SessionID, text string) *model.Brief {
	t.Helper()
	b := &model.Brief{
		ID:          model.NewBriefID(),
		SessionID:   session,
		SourceText:  text,
		Summary:     "seeded",
		Decisions:   []string{},
		Actions:     []model.ActionItem{},
		Questions:   []string{},
		Fingerprint: model.Fingerprint(text),
		CreatedAt:   time.Now(),
	}
	gt.NoError(t, repo.PutBrief(context.Background(), b))
	return b
}

func TestDedupFingerprintOnlyTier(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.supportsCompound = false

	session := newSession()
	seeded := seedBrief(t, repo, session, "duplicate me")

	llm := &mockLLM{}
	uc := brief.New(repo, llm)

	result, created, err := uc.Produce(ctx, "duplicate me", session)
	gt.NoError(t, err)
	gt.False(t, created)
	gt.Equal(t, result.ID, seeded.ID)
	gt.A(t, llm.prompts).Length(0)
}

func TestDedupFiltersForeignSessions(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.supportsCompound = false

	// Same fingerprint, different session: must not satisfy the gate
	seedBrief(t, repo, newSession(), "shared text")

	uc := brief.New(repo, replyWith(validReply))

	result, created, err := uc.Produce(ctx, "shared text", newSession())
	gt.NoError(t, err)
	gt.True(t, created)
	gt.V(t, result).NotNil()
}

func TestDedupCompoundFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.findFunc = func(ctx context.Context, session model.SessionID, fingerprint string) (*model.Brief, error) {
		return nil, errors.New("the query requires an index")
	}

	session := newSession()
	seeded := seedBrief(t, repo, session, "indexed out")

	llm := &mockLLM{}
	uc := brief.New(repo, llm)

	result, created, err := uc.Produce(ctx, "indexed out", session)
	gt.NoError(t, err)
	gt.False(t, created)
	gt.Equal(t, result.ID, seeded.ID)
	gt.A(t, llm.prompts).Length(0)
}

func TestDedupLookupFailureProceeds(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.findFunc = func(ctx context.Context, session model.SessionID, fingerprint string) (*model.Brief, error) {
		return nil, errors.New("compound query failed")
	}
	repo.listByFpFunc = func(ctx context.Context, fingerprint string) ([]*model.Brief, error) {
		return nil, errors.New("fallback also failed")
	}

	llm := replyWith(validReply)
	uc := brief.New(repo, llm)

	// Dedup is best-effort: a broken lookup must not fail the request
	result, created, err := uc.Produce(ctx, "no gate today", newSession())
	gt.NoError(t, err)
	gt.True(t, created)
	gt.V(t, result).NotNil()
	gt.A(t, llm.prompts).Length(1)
}
