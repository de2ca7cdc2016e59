package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/repository"
	"github.com/m-mizutani/gt"
)

func testBrief(session model.SessionID, text string, at time.Time) *model.Brief {
	return &model.Brief{
		ID:          model.NewBriefID(),
		SessionID:   session,
		SourceText:  text,
		Summary:     "summary of " + text,
		Decisions:   []string{"d1"},
		Actions:     []model.ActionItem{{Task: "t1"}},
		Questions:   []string{"q1"},
		Fingerprint: model.Fingerprint(text),
		CreatedAt:   at,
	}
}

func TestMemoryPutGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	session := model.SessionID("b47ac10b-58cc-4372-a567-0e02b2c3d479")
	b := testBrief(session, "hello", time.Now())
	gt.NoError(t, repo.PutBrief(ctx, b))

	got, err := repo.GetBrief(ctx, b.ID, session)
	gt.NoError(t, err)
	gt.V(t, got).NotNil()
	gt.Equal(t, got.ID, b.ID)
	gt.Equal(t, got.Summary, b.Summary)

	// Foreign session and absent ID are indistinguishable
	got, err = repo.GetBrief(ctx, b.ID, model.SessionID("c47ac10b-58cc-4372-a567-0e02b2c3d479"))
	gt.NoError(t, err)
	gt.V(t, got).Nil()

	got, err = repo.GetBrief(ctx, model.NewBriefID(), session)
	gt.NoError(t, err)
	gt.V(t, got).Nil()
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	session := model.SessionID("b47ac10b-58cc-4372-a567-0e02b2c3d479")
	b := testBrief(session, "to delete", time.Now())
	gt.NoError(t, repo.PutBrief(ctx, b))

	deleted, err := repo.DeleteBrief(ctx, b.ID, model.SessionID("c47ac10b-58cc-4372-a567-0e02b2c3d479"))
	gt.NoError(t, err)
	gt.False(t, deleted)

	deleted, err = repo.DeleteBrief(ctx, b.ID, session)
	gt.NoError(t, err)
	gt.True(t, deleted)

	deleted, err = repo.DeleteBrief(ctx, b.ID, session)
	gt.NoError(t, err)
	gt.False(t, deleted)
}

func TestMemoryFindBySessionAndFingerprint(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	sessionA := model.SessionID("b47ac10b-58cc-4372-a567-0e02b2c3d479")
	sessionB := model.SessionID("c47ac10b-58cc-4372-a567-0e02b2c3d479")

	b := testBrief(sessionA, "shared text", time.Now())
	gt.NoError(t, repo.PutBrief(ctx, b))

	found, err := repo.FindBySessionAndFingerprint(ctx, sessionA, b.Fingerprint)
	gt.NoError(t, err)
	gt.V(t, found).NotNil()
	gt.Equal(t, found.ID, b.ID)

	// Same fingerprint under another session does not match
	found, err = repo.FindBySessionAndFingerprint(ctx, sessionB, b.Fingerprint)
	gt.NoError(t, err)
	gt.V(t, found).Nil()

	// But the cross-session fingerprint listing sees it
	all, err := repo.ListByFingerprint(ctx, b.Fingerprint)
	gt.NoError(t, err)
	gt.A(t, all).Length(1)
}

func TestMemoryListRecent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	session := model.SessionID("b47ac10b-58cc-4372-a567-0e02b2c3d479")
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	var ids []model.BriefID
	for i := 0; i < 4; i++ {
		b := testBrief(session, string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour))
		gt.NoError(t, repo.PutBrief(ctx, b))
		ids = append(ids, b.ID)
	}

	briefs, err := repo.ListRecent(ctx, session, 3)
	gt.NoError(t, err)
	gt.A(t, briefs).Length(3)
	gt.Equal(t, briefs[0].ID, ids[3])
	gt.Equal(t, briefs[1].ID, ids[2])
	gt.Equal(t, briefs[2].ID, ids[1])
}
