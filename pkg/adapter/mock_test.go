package adapter_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/m-mizutani/briefhub/pkg/adapter"
	"github.com/m-mizutani/gt"
)

func TestMockLLMReply(t *testing.T) {
	llm := adapter.NewMockLLM()

	reply, err := llm.Complete(context.Background(), "summarize this")
	gt.NoError(t, err)

	var parsed map[string]any
	gt.NoError(t, json.Unmarshal([]byte(reply), &parsed))

	for _, key := range []string{"summary", "decisions", "actions", "questions"} {
		gt.True(t, parsed[key] != nil)
	}
}
