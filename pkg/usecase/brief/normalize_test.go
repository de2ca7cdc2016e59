package brief_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/gt"
)

func TestNormalizeActions(t *testing.T) {
	raw := []any{
		map[string]any{"text": "call client", "owner": "Amy"},
		map[string]any{"action": "deploy", "due_date": "2025-01-01"},
		"garbage",
	}

	items := brief.NormalizeActionsForTest(raw)
	gt.A(t, items).Length(2)

	gt.Equal(t, items[0].Task, "call client")
	gt.V(t, items[0].Assignee).NotNil()
	gt.Equal(t, *items[0].Assignee, "Amy")
	gt.V(t, items[0].DueDate).Nil()

	gt.Equal(t, items[1].Task, "deploy")
	gt.V(t, items[1].Assignee).Nil()
	gt.V(t, items[1].DueDate).NotNil()
	gt.Equal(t, *items[1].DueDate, "2025-01-01")
}

func TestNormalizeActionsCanonicalKeys(t *testing.T) {
	raw := []any{
		map[string]any{"task": "review PR", "assignee": "Bob", "dueDate": "2025-02-01"},
	}

	items := brief.NormalizeActionsForTest(raw)
	gt.A(t, items).Length(1)
	gt.Equal(t, items[0].Task, "review PR")
	gt.Equal(t, *items[0].Assignee, "Bob")
	gt.Equal(t, *items[0].DueDate, "2025-02-01")
}

func TestNormalizeActionsEmpty(t *testing.T) {
	items := brief.NormalizeActionsForTest(nil)
	gt.V(t, items).NotNil()
	gt.A(t, items).Length(0)
}

func TestTrimSummary(t *testing.T) {
	t.Run("short summary unchanged", func(t *testing.T) {
		s := "A short summary."
		gt.Equal(t, brief.TrimSummaryForTest(s, 100), s)
	})

	t.Run("long summary truncated to exactly max words", func(t *testing.T) {
		words := make([]string, 150)
		for i := range words {
			words[i] = "word"
		}
		trimmed := brief.TrimSummaryForTest(strings.Join(words, " "), 100)
		gt.A(t, strings.Fields(trimmed)).Length(100)
		gt.True(t, !strings.HasSuffix(trimmed, "..."))
	})

	t.Run("exactly max words unchanged", func(t *testing.T) {
		s := strings.TrimSpace(strings.Repeat("w ", 100))
		gt.Equal(t, brief.TrimSummaryForTest(s, 100), s)
	})
}

func TestNormalizeStrings(t *testing.T) {
	raw := []any{"keep", 42, "also keep", map[string]any{"x": 1}}
	out := brief.NormalizeStringsForTest(raw)
	gt.Equal(t, out, []string{"keep", "also keep"})

	empty := brief.NormalizeStringsForTest(nil)
	gt.V(t, empty).NotNil()
	gt.A(t, empty).Length(0)
}
