package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// MockLLM returns a deterministic well-formed brief response without calling
// any external service. Used by `serve --mock` and local development.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) Complete(ctx context.Context, prompt string) (string, error) {
	wordCount := len(strings.Fields(prompt))

	reply := map[string]any{
		"summary": fmt.Sprintf("Mock summary of the provided text (%d words in prompt). The content covers topics that would benefit from structured analysis and follow-up planning.", wordCount),
		"decisions": []string{
			"Proceed with the outlined approach",
			"Allocate necessary resources",
		},
		"actions": []map[string]any{
			{"task": "Review and validate the analysis results", "assignee": "Project Manager", "dueDate": "2024-01-15"},
			{"task": "Implement the recommended changes", "assignee": nil, "dueDate": nil},
		},
		"questions": []string{
			"What are the key success metrics?",
			"Who is responsible for ongoing monitoring?",
		},
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
