package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"xbps-tmpl/internal/types"
)

// Apply runs every step of a plan in order and stops at the first failure.
// Steps that already wrote their template are not rolled back.
func (s Service) Apply(ctx context.Context, req ApplyRequest) (ApplyResult, error) {
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath == "" {
		return ApplyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan path is required")
	}
	plan, err := s.Plans.LoadPlan(planPath)
	if err != nil {
		return ApplyResult{}, err
	}
	inPlace := req.InPlace || plan.InPlace

	var result ApplyResult
	for _, step := range plan.Steps {
		stepResult, err := s.applyStep(ctx, step, inPlace, req.CheckSyntax)
		if err != nil {
			return result, err
		}
		result.Steps = append(result.Steps, stepResult)
	}
	log.Ctx(ctx).Debug().Int("steps", len(result.Steps)).Msg("plan applied")
	return result, nil
}

func (s Service) applyStep(ctx context.Context, step types.PlanStep, inPlace bool, checkSyntax bool) (ApplyStepResult, error) {
	switch step.Kind {
	case types.PlanStepTrim:
		trimmed, err := s.Trim(ctx, TrimRequest{
			Template:    step.Template,
			Fields:      step.Fields,
			Packages:    step.Packages,
			InPlace:     inPlace,
			CheckSyntax: checkSyntax,
		})
		if err != nil {
			return ApplyStepResult{}, err
		}
		lines := make([]string, 0, len(trimmed.Values))
		for _, value := range trimmed.Values {
			lines = append(lines, value.Value)
		}
		return ApplyStepResult{
			Kind:     step.Kind,
			Template: step.Template,
			Output:   strings.Join(lines, "\n"),
			Written:  trimmed.Written,
		}, nil
	case types.PlanStepDevel:
		devel, err := s.MkDevel(ctx, MkDevelRequest{
			PkgName:     step.Template,
			DevelName:   step.Devel,
			FileList:    step.Files,
			InPlace:     inPlace,
			CheckSyntax: checkSyntax,
		})
		if err != nil {
			return ApplyStepResult{}, err
		}
		return ApplyStepResult{
			Kind:     step.Kind,
			Template: step.Template,
			Output:   devel.Text,
			Written:  devel.Written,
		}, nil
	default:
		return ApplyStepResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown plan step kind: " + string(step.Kind))
	}
}
