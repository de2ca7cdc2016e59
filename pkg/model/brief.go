package model

import (
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultMaxSourceTextLen is the maximum accepted length of source text
	DefaultMaxSourceTextLen = 10000

	// MaxSummaryWords is the hard cap on summary length in words
	MaxSummaryWords = 100

	// DefaultListLimit and MaxListLimit bound the recent-brief listing
	DefaultListLimit = 10
	MaxListLimit     = 50
)

type BriefID string

// NewBriefID generates a new unique BriefID
func NewBriefID() BriefID {
	return BriefID(uuid.New().String())
}

type SessionID string

var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// Validate checks that the session ID matches the canonical UUID textual form
func (s SessionID) Validate() error {
	if !uuidPattern.MatchString(string(s)) {
		return goerr.Wrap(ErrInvalidInput, "session ID must be a UUID", goerr.V("session_id", s))
	}
	return nil
}

// Validate checks that the brief ID matches the canonical UUID textual form
func (b BriefID) Validate() error {
	if !uuidPattern.MatchString(string(b)) {
		return goerr.Wrap(ErrInvalidInput, "brief ID must be a UUID", goerr.V("brief_id", b))
	}
	return nil
}

// ActionItem is a single action extracted from the source text. Assignee and
// DueDate are pointers so that unknown values serialize as JSON null.
type ActionItem struct {
	Task     string  `json:"task" firestore:"task"`
	Assignee *string `json:"assignee" firestore:"assignee"`
	DueDate  *string `json:"dueDate" firestore:"due_date"`
}

// Brief is the structured record extracted from one source text. Immutable
// once created; the only mutation the system supports is deletion.
type Brief struct {
	ID          BriefID      `json:"id"`
	SessionID   SessionID    `json:"sessionId"`
	SourceText  string       `json:"sourceText"`
	Summary     string       `json:"summary"`
	Decisions   []string     `json:"decisions"`
	Actions     []ActionItem `json:"actions"`
	Questions   []string     `json:"questions"`
	Fingerprint string       `json:"fingerprint"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// BriefSummary is the reduced view returned by list operations
type BriefSummary struct {
	ID            BriefID   `json:"id"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"createdAt"`
	DecisionCount int       `json:"decisionCount"`
	ActionCount   int       `json:"actionCount"`
	QuestionCount int       `json:"questionCount"`
}

// SortByCreatedAtDesc orders briefs newest first. Ties on CreatedAt break on
// descending ID so the order stays deterministic.
func SortByCreatedAtDesc(briefs []*Brief) {
	sort.Slice(briefs, func(i, j int) bool {
		if !briefs[i].CreatedAt.Equal(briefs[j].CreatedAt) {
			return briefs[i].CreatedAt.After(briefs[j].CreatedAt)
		}
		return briefs[i].ID > briefs[j].ID
	})
}

// ToSummary builds the list view of a brief
func (b *Brief) ToSummary() *BriefSummary {
	return &BriefSummary{
		ID:            b.ID,
		Summary:       b.Summary,
		CreatedAt:     b.CreatedAt,
		DecisionCount: len(b.Decisions),
		ActionCount:   len(b.Actions),
		QuestionCount: len(b.Questions),
	}
}
