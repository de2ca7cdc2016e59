package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const briefCollection = "briefs"

// Firestore implements Repository using Cloud Firestore
type Firestore struct {
	client          *firestore.Client
	compoundQueries bool
}

type FirestoreOption func(*Firestore)

// WithoutCompoundQueries disables compound-query tiers for deployments
// without the composite indexes (session_id, sha256) and
// (session_id, created_at DESC).
func WithoutCompoundQueries() FirestoreOption {
	return func(r *Firestore) {
		r.compoundQueries = false
	}
}

// New creates a Firestore repository. The client is constructed once here
// and reused for the life of the process.
func New(ctx context.Context, projectID, databaseID string, opts ...FirestoreOption) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project", projectID), goerr.V("database", databaseID))
	}

	r := &Firestore{
		client:          client,
		compoundQueries: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

func (r *Firestore) briefs() *firestore.CollectionRef {
	return r.client.Collection(briefCollection)
}

// briefDoc is the Firestore document shape. Field names follow the existing
// collection layout (snake_case, sha256 for the fingerprint).
type briefDoc struct {
	ID         string      `firestore:"id"`
	SessionID  string      `firestore:"client_session_id"`
	SourceText string      `firestore:"source_text"`
	Summary    string      `firestore:"summary"`
	Decisions  []string    `firestore:"decisions"`
	Actions    []actionDoc `firestore:"actions"`
	Questions  []string    `firestore:"questions"`
	SHA256     string      `firestore:"sha256"`
	CreatedAt  time.Time   `firestore:"created_at"`
}

type actionDoc struct {
	Task     string  `firestore:"task"`
	Assignee *string `firestore:"assignee"`
	DueDate  *string `firestore:"due_date"`
}

func toDoc(b *model.Brief) *briefDoc {
	actions := make([]actionDoc, 0, len(b.Actions))
	for _, a := range b.Actions {
		actions = append(actions, actionDoc{Task: a.Task, Assignee: a.Assignee, DueDate: a.DueDate})
	}
	return &briefDoc{
		ID:         string(b.ID),
		SessionID:  string(b.SessionID),
		SourceText: b.SourceText,
		Summary:    b.Summary,
		Decisions:  b.Decisions,
		Actions:    actions,
		Questions:  b.Questions,
		SHA256:     b.Fingerprint,
		CreatedAt:  b.CreatedAt,
	}
}

func (d *briefDoc) toModel() *model.Brief {
	actions := make([]model.ActionItem, 0, len(d.Actions))
	for _, a := range d.Actions {
		actions = append(actions, model.ActionItem{Task: a.Task, Assignee: a.Assignee, DueDate: a.DueDate})
	}
	return &model.Brief{
		ID:          model.BriefID(d.ID),
		SessionID:   model.SessionID(d.SessionID),
		SourceText:  d.SourceText,
		Summary:     d.Summary,
		Decisions:   d.Decisions,
		Actions:     actions,
		Questions:   d.Questions,
		Fingerprint: d.SHA256,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *Firestore) PutBrief(ctx context.Context, brief *model.Brief) error {
	if _, err := r.briefs().Doc(string(brief.ID)).Set(ctx, toDoc(brief)); err != nil {
		return goerr.Wrap(err, "failed to put brief", goerr.V("brief_id", brief.ID))
	}
	return nil
}

func (r *Firestore) GetBrief(ctx context.Context, id model.BriefID, session model.SessionID) (*model.Brief, error) {
	snap, err := r.briefs().Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get brief", goerr.V("brief_id", id))
	}

	var doc briefDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode brief", goerr.V("brief_id", id))
	}

	if doc.SessionID != string(session) {
		return nil, nil
	}

	return doc.toModel(), nil
}

func (r *Firestore) DeleteBrief(ctx context.Context, id model.BriefID, session model.SessionID) (bool, error) {
	brief, err := r.GetBrief(ctx, id, session)
	if err != nil {
		return false, err
	}
	if brief == nil {
		return false, nil
	}

	if _, err := r.briefs().Doc(string(id)).Delete(ctx); err != nil {
		return false, goerr.Wrap(err, "failed to delete brief", goerr.V("brief_id", id))
	}

	return true, nil
}

func (r *Firestore) SupportsCompoundQueries() bool {
	return r.compoundQueries
}

func (r *Firestore) FindBySessionAndFingerprint(ctx context.Context, session model.SessionID, fingerprint string) (*model.Brief, error) {
	query := r.briefs().
		Where("client_session_id", "==", string(session)).
		Where("sha256", "==", fingerprint).
		Limit(1)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		if status.Code(err) == codes.FailedPrecondition {
			return nil, goerr.Wrap(err, "compound fingerprint query needs a composite index")
		}
		return nil, goerr.Wrap(err, "failed to query brief by fingerprint")
	}

	if len(docs) == 0 {
		return nil, nil
	}

	var doc briefDoc
	if err := docs[0].DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode brief")
	}

	return doc.toModel(), nil
}

func (r *Firestore) ListByFingerprint(ctx context.Context, fingerprint string) ([]*model.Brief, error) {
	iter := r.briefs().Where("sha256", "==", fingerprint).Documents(ctx)
	defer iter.Stop()

	var briefs []*model.Brief
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate briefs by fingerprint")
		}

		var doc briefDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode brief")
		}
		briefs = append(briefs, doc.toModel())
	}

	return briefs, nil
}

func (r *Firestore) ListRecent(ctx context.Context, session model.SessionID, limit int) ([]*model.Brief, error) {
	query := r.briefs().
		Where("client_session_id", "==", string(session)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		if status.Code(err) == codes.FailedPrecondition {
			return nil, goerr.Wrap(err, "ordered listing needs a composite index")
		}
		return nil, goerr.Wrap(err, "failed to list recent briefs")
	}

	briefs := make([]*model.Brief, 0, len(docs))
	for _, snap := range docs {
		var doc briefDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode brief")
		}
		briefs = append(briefs, doc.toModel())
	}

	return briefs, nil
}

func (r *Firestore) ListBySession(ctx context.Context, session model.SessionID) ([]*model.Brief, error) {
	iter := r.briefs().Where("client_session_id", "==", string(session)).Documents(ctx)
	defer iter.Stop()

	var briefs []*model.Brief
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate briefs by session")
		}

		var doc briefDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode brief")
		}
		briefs = append(briefs, doc.toModel())
	}

	return briefs, nil
}
