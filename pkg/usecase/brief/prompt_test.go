package brief_test

import (
	"testing"

	"github.com/m-mizutani/briefhub/pkg/usecase/brief"
	"github.com/m-mizutani/gt"
)

func TestBuildPrompt(t *testing.T) {
	sourceText := "We agreed to migrate the billing service."

	t.Run("lenient describes the fields", func(t *testing.T) {
		prompt, err := brief.BuildPromptForTest(sourceText, false)
		gt.NoError(t, err)
		gt.S(t, prompt).Contains(sourceText)
		gt.S(t, prompt).Contains(`"summary"`)
		gt.S(t, prompt).Contains(`"decisions"`)
		gt.S(t, prompt).Contains(`"actions"`)
		gt.S(t, prompt).Contains(`"questions"`)
	})

	t.Run("strict embeds an example skeleton", func(t *testing.T) {
		prompt, err := brief.BuildPromptForTest(sourceText, true)
		gt.NoError(t, err)
		gt.S(t, prompt).Contains(sourceText)
		gt.S(t, prompt).Contains("IMPORTANT")
		gt.S(t, prompt).Contains(`"task": "action description"`)
		gt.S(t, prompt).Contains("No markdown")
	})

	t.Run("empty source text is still valid", func(t *testing.T) {
		prompt, err := brief.BuildPromptForTest("", false)
		gt.NoError(t, err)
		gt.S(t, prompt).Contains("Text to analyze:")
	})
}
