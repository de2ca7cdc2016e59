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

func seedBriefAt(t *testing.T, repo *mockRepo, session model.SessionID, text string, at time.Time) *model.Brief {
	t.Helper()
	b := seedBrief(t, repo, session, text)
	b.CreatedAt = at
	gt.NoError(t, repo.PutBrief(context.Background(), b))
	return b
}

func TestListRecentLocalSortTier(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.supportsCompound = false
	session := newSession()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	old := seedBriefAt(t, repo, session, "oldest", base)
	mid := seedBriefAt(t, repo, session, "middle", base.Add(time.Hour))
	newest := seedBriefAt(t, repo, session, "newest", base.Add(2*time.Hour))

	// Another session's briefs never show up
	seedBrief(t, repo, newSession(), "foreign")

	uc := brief.New(repo, nil)

	summaries, err := uc.ListRecent(ctx, session, 10)
	gt.NoError(t, err)
	gt.A(t, summaries).Length(3)
	gt.Equal(t, summaries[0].ID, newest.ID)
	gt.Equal(t, summaries[1].ID, mid.ID)
	gt.Equal(t, summaries[2].ID, old.ID)
}

func TestListRecentLimit(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.supportsCompound = false
	session := newSession()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedBriefAt(t, repo, session, string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
	}

	uc := brief.New(repo, nil)

	summaries, err := uc.ListRecent(ctx, session, 2)
	gt.NoError(t, err)
	gt.A(t, summaries).Length(2)
}

func TestListRecentDeterministicTieBreak(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	repo.supportsCompound = false
	session := newSession()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedBriefAt(t, repo, session, "one", at)
	seedBriefAt(t, repo, session, "two", at)

	uc := brief.New(repo, nil)

	first, err := uc.ListRecent(ctx, session, 10)
	gt.NoError(t, err)
	second, err := uc.ListRecent(ctx, session, 10)
	gt.NoError(t, err)

	gt.A(t, first).Length(2)
	gt.Equal(t, first[0].ID, second[0].ID)
	gt.Equal(t, first[1].ID, second[1].ID)
}

func TestListRecentLimitValidation(t *testing.T) {
	ctx := context.Background()
	uc := brief.New(newMockRepo(), nil)
	session := newSession()

	for _, limit := range []int{-1, model.MaxListLimit + 1} {
		_, err := uc.ListRecent(ctx, session, limit)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidInput))
	}

	// Zero means default
	summaries, err := uc.ListRecent(ctx, session, 0)
	gt.NoError(t, err)
	gt.A(t, summaries).Length(0)
}

func TestListRecentOrderedTier(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepo()
	session := newSession()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	a := seedBriefAt(t, repo, session, "a", base)
	b := seedBriefAt(t, repo, session, "b", base.Add(time.Minute))

	summaries, err := brief.New(repo, nil).ListRecent(ctx, session, 10)
	gt.NoError(t, err)
	gt.A(t, summaries).Length(2)
	gt.Equal(t, summaries[0].ID, b.ID)
	gt.Equal(t, summaries[1].ID, a.ID)
}
