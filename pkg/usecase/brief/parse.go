package brief

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/goerr/v2"
)

// rawBrief is the validated but not yet normalized model output. Element
// types inside the slices are still whatever the model produced.
type rawBrief struct {
	Summary   string
	Decisions []any
	Actions   []any
	Questions []any
}

var requiredFields = []string{"summary", "decisions", "actions", "questions"}

// stripFences removes a leading ```json or ``` marker and a trailing ```
// marker. Models frequently wrap JSON in markdown fences despite being told
// not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = rest
	}
	if rest, ok := strings.CutSuffix(s, "```"); ok {
		s = rest
	}
	return strings.TrimSpace(s)
}

// parseModelReply validates the raw model reply into a rawBrief. Failures are
// one of the parse-level error kinds that drive the strict-prompt retry.
func parseModelReply(reply string) (*rawBrief, error) {
	cleaned := stripFences(reply)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, goerr.Wrap(model.ErrMalformedOutput, "reply is not a JSON object", goerr.V("cause", err))
	}

	for _, field := range requiredFields {
		if _, ok := parsed[field]; !ok {
			return nil, goerr.Wrap(model.ErrMissingField, "required field is absent", goerr.V("field", field))
		}
	}

	summary, ok := parsed["summary"].(string)
	if !ok {
		return nil, goerr.Wrap(model.ErrTypeMismatch, "summary must be a string", goerr.V("field", "summary"))
	}

	sequences := make(map[string][]any, 3)
	for _, field := range []string{"decisions", "actions", "questions"} {
		seq, ok := parsed[field].([]any)
		if !ok {
			return nil, goerr.Wrap(model.ErrTypeMismatch, "field must be an array", goerr.V("field", field))
		}
		sequences[field] = seq
	}

	for i, elem := range sequences["actions"] {
		action, ok := elem.(map[string]any)
		if !ok {
			return nil, goerr.Wrap(model.ErrInvalidActionShape, "action must be an object", goerr.V("index", i))
		}
		if _, ok := lookupAlias(action, taskAliases); !ok {
			return nil, goerr.Wrap(model.ErrInvalidActionShape, "action has no task field", goerr.V("index", i))
		}
	}

	return &rawBrief{
		Summary:   summary,
		Decisions: sequences["decisions"],
		Actions:   sequences["actions"],
		Questions: sequences["questions"],
	}, nil
}

// ParseModelReplyForTest is a test helper that exposes parseModelReply
func ParseModelReplyForTest(reply string) error {
	_, err := parseModelReply(reply)
	return err
}
