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

func (s Service) Trim(ctx context.Context, req TrimRequest) (TrimResult, error) {
	name := strings.TrimSpace(req.Template)
	if name == "" {
		return TrimResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("template name is required")
	}
	fields := shared.SplitFields(req.Fields)
	if len(fields) == 0 {
		return TrimResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one dependency field is required")
	}
	path, content, err := s.loadTemplate(ctx, name)
	if err != nil {
		return TrimResult{}, err
	}

	result := TrimResult{Path: path, Values: s.formatFields(ctx, fields, req.Packages)}
	if !req.InPlace {
		return result, nil
	}

	values := make(map[types.DepField]string, len(result.Values))
	for _, value := range result.Values {
		values[value.Field] = value.Value
	}
	patched, replaced := core.NewTemplatePatcher().Patch(ctx, content, values)
	result.Replaced = replaced
	if patched == content {
		log.Ctx(ctx).Info().Str("template", path).Msg("template unchanged")
		return result, nil
	}
	if err := s.write(path, patched, req.CheckSyntax); err != nil {
		return TrimResult{}, err
	}
	result.Written = true
	log.Ctx(ctx).Info().Str("template", path).Int("fields", len(replaced)).Msg("template updated")
	return result, nil
}

func (s Service) loadTemplate(ctx context.Context, name string) (string, string, error) {
	distDir, err := s.DistDir.Locate(ctx)
	if err != nil {
		return "", "", err
	}
	path := shared.TemplatePath(distDir, name)
	content, err := s.Templates.Read(path)
	if err != nil {
		return "", "", err
	}
	return path, content, nil
}

func (s Service) write(path string, content string, checkSyntax bool) error {
	if checkSyntax {
		if err := s.Syntax.Check(path, content); err != nil {
			return err
		}
	}
	return s.Templates.Write(path, content)
}
