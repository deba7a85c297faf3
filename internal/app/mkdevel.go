package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/core"
)

func (s Service) MkDevel(ctx context.Context, req MkDevelRequest) (MkDevelResult, error) {
	pkgName := strings.TrimSpace(req.PkgName)
	develName := strings.TrimSpace(req.DevelName)
	if pkgName == "" || develName == "" {
		return MkDevelResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name and devel name are required")
	}
	path, content, err := s.loadTemplate(ctx, pkgName)
	if err != nil {
		return MkDevelResult{}, err
	}
	if req.InPlace && core.HasDevelStanza(content, develName) {
		return MkDevelResult{}, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("package already made for the name: %s-devel", develName))
	}

	generator := core.NewDevelGenerator()
	stanza := generator.Generate(ctx, pkgName, develName, req.FileList)
	result := MkDevelResult{Path: path, Stanza: stanza, Text: generator.Render(stanza)}
	if !req.InPlace {
		return result, nil
	}

	if req.CheckSyntax {
		if err := s.Syntax.Check(path, content+result.Text); err != nil {
			return MkDevelResult{}, err
		}
	}
	if err := s.Templates.Append(path, result.Text); err != nil {
		return MkDevelResult{}, err
	}
	result.Written = true
	log.Ctx(ctx).Info().Str("template", path).Str("devel", stanza.FullName()).Msg("devel package added")
	return result, nil
}
