package brief

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed prompt/lenient.md
var lenientPromptRaw string

//go:embed prompt/strict.md
var strictPromptRaw string

var (
	lenientPromptTmpl = template.Must(template.New("lenient").Parse(lenientPromptRaw))
	strictPromptTmpl  = template.Must(template.New("strict").Parse(strictPromptRaw))
)

// buildPrompt renders the model request for the given source text. The strict
// variant embeds a literal example of the expected JSON shape and is used for
// the second attempt after a parse failure.
func buildPrompt(sourceText string, strict bool) (string, error) {
	tmpl := lenientPromptTmpl
	if strict {
		tmpl = strictPromptTmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"SourceText": sourceText,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt template")
	}

	return buf.String(), nil
}

// BuildPromptForTest is a test helper that exposes buildPrompt
func BuildPromptForTest(sourceText string, strict bool) (string, error) {
	return buildPrompt(sourceText, strict)
}
