package core

import (
	"context"
	"regexp"

	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/types"
)

type TemplatePatcher struct{}

func NewTemplatePatcher() TemplatePatcher {
	return TemplatePatcher{}
}

// Patch replaces the assignment of every recognized field present in values
// and returns the new text together with the fields that were replaced.
// Fields missing from the template are not inserted.
func (p TemplatePatcher) Patch(ctx context.Context, text string, values map[types.DepField]string) (string, []types.DepField) {
	for field := range values {
		if !field.Recognized() {
			log.Ctx(ctx).Debug().Str("field", string(field)).Msg("skipping unrecognized field")
		}
	}
	var replaced []types.DepField
	for _, field := range types.DepFields {
		value, ok := values[field]
		if !ok {
			continue
		}
		pattern := fieldPattern(field)
		if !pattern.MatchString(text) {
			log.Ctx(ctx).Debug().Str("field", string(field)).Msg("field not present in template")
			continue
		}
		text = pattern.ReplaceAllLiteralString(text, value)
		replaced = append(replaced, field)
	}
	return text, replaced
}

// fieldPattern matches field="..." from the start of a line up to the first
// line holding a closing quote.
func fieldPattern(field types.DepField) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(string(field)) + `="(.*\n)*?.*"`)
}
