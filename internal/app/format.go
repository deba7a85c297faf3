package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/core"
	"xbps-tmpl/internal/shared"
	"xbps-tmpl/internal/types"
)

func (s Service) FormatDeps(ctx context.Context, req FormatRequest) (FormatResult, error) {
	fields := shared.SplitFields(req.Fields)
	if len(fields) == 0 {
		return FormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one dependency field is required")
	}
	return FormatResult{Values: s.formatFields(ctx, fields, req.Packages)}, nil
}

// formatFields formats the package list once per recognized field, each time
// from the unformatted input.
func (s Service) formatFields(ctx context.Context, fields []string, packages string) []FieldValue {
	formatter := core.NewDepListFormatter(s.Format)
	var values []FieldValue
	for _, name := range fields {
		field := types.DepField(strings.TrimSpace(name))
		if !field.Recognized() {
			log.Ctx(ctx).Debug().Str("field", string(field)).Msg("skipping unrecognized field")
			continue
		}
		values = append(values, FieldValue{
			Field: field,
			Value: formatter.Format(ctx, packages, field),
		})
	}
	return values
}
