package brief

import (
	"strings"

	"github.com/m-mizutani/briefhub/pkg/model"
)

// Key aliases accepted from model output and legacy callers. The canonical
// names are task, assignee and dueDate.
var (
	taskAliases     = []string{"task", "text", "action"}
	assigneeAliases = []string{"assignee", "owner"}
	dueDateAliases  = []string{"dueDate", "due_date"}
)

// lookupAlias returns the first alias key present in m with a string value
func lookupAlias(m map[string]any, aliases []string) (string, bool) {
	for _, key := range aliases {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// normalizeActions re-keys raw action entries into canonical ActionItems.
// Non-mapping entries and entries without any task-equivalent key are
// dropped, not errors: the model emits partial junk and the rest of the
// sequence is still worth keeping. Missing assignee and dueDate become null.
func normalizeActions(raw []any) []model.ActionItem {
	items := make([]model.ActionItem, 0, len(raw))
	for _, elem := range raw {
		entry, ok := elem.(map[string]any)
		if !ok {
			continue
		}

		task, ok := lookupAlias(entry, taskAliases)
		if !ok {
			continue
		}

		item := model.ActionItem{Task: task}
		if assignee, ok := lookupAlias(entry, assigneeAliases); ok {
			item.Assignee = &assignee
		}
		if dueDate, ok := lookupAlias(entry, dueDateAliases); ok {
			item.DueDate = &dueDate
		}
		items = append(items, item)
	}
	return items
}

// normalizeStrings keeps the string elements of a raw sequence in order,
// dropping anything else. Always returns a non-nil slice.
func normalizeStrings(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, elem := range raw {
		if s, ok := elem.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// trimSummary enforces the word cap: the first maxWords words joined by
// single spaces. No ellipsis, no re-punctuation.
func trimSummary(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}

// Test helpers - exported versions of private functions for testing
// These should only be used in tests

// NormalizeActionsForTest is a test helper that exposes normalizeActions
func NormalizeActionsForTest(raw []any) []model.ActionItem {
	return normalizeActions(raw)
}

// NormalizeStringsForTest is a test helper that exposes normalizeStrings
func NormalizeStringsForTest(raw []any) []string {
	return normalizeStrings(raw)
}

// TrimSummaryForTest is a test helper that exposes trimSummary
func TrimSummaryForTest(s string, maxWords int) string {
	return trimSummary(s, maxWords)
}
