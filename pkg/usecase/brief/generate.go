package brief

import (
	"context"

	"github.com/m-mizutani/briefhub/pkg/model"
	"github.com/m-mizutani/briefhub/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// briefContent is the normalized output of one successful generation
type briefContent struct {
	Summary   string
	Decisions []string
	Actions   []model.ActionItem
	Questions []string
}

// parseAndNormalize turns a raw model reply into canonical content. The
// normalization step is applied identically on both attempts.
func parseAndNormalize(reply string) (*briefContent, error) {
	raw, err := parseModelReply(reply)
	if err != nil {
		return nil, err
	}

	return &briefContent{
		Summary:   trimSummary(raw.Summary, model.MaxSummaryWords),
		Decisions: normalizeStrings(raw.Decisions),
		Actions:   normalizeActions(raw.Actions),
		Questions: normalizeStrings(raw.Questions),
	}, nil
}

// generate runs the bounded two-attempt generation protocol: lenient prompt
// first, then one escalation to the strict prompt if the reply does not
// parse. Transport failures are not retried here; they propagate as
// model.ErrModelUnavailable. A second parse failure surfaces as
// model.ErrGenerationFailed carrying the second cause.
func (u *UseCase) generate(ctx context.Context, sourceText string) (*briefContent, error) {
	prompt, err := buildPrompt(sourceText, false)
	if err != nil {
		return nil, err
	}

	reply, err := u.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	content, parseErr := parseAndNormalize(reply)
	if parseErr == nil {
		return content, nil
	}

	logging.From(ctx).Warn("first generation attempt produced unusable output, retrying with strict prompt",
		"error", parseErr)

	strictPrompt, err := buildPrompt(sourceText, true)
	if err != nil {
		return nil, err
	}

	reply, err = u.llm.Complete(ctx, strictPrompt)
	if err != nil {
		return nil, err
	}

	content, parseErr = parseAndNormalize(reply)
	if parseErr != nil {
		return nil, goerr.Wrap(model.ErrGenerationFailed, "strict retry also produced unusable output",
			goerr.V("cause", parseErr))
	}

	return content, nil
}
