package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"xbps-tmpl/internal/ports"
	"xbps-tmpl/internal/types"
)

type PlanFileAdapter struct{}

func NewPlanFileAdapter() PlanFileAdapter {
	return PlanFileAdapter{}
}

func (a PlanFileAdapter) LoadPlan(path string) (types.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Plan{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("plan file not found: %s", path)).
			WithCause(err)
	}
	var plan types.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return types.Plan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse plan yaml").
			WithCause(err)
	}
	for i, step := range plan.Steps {
		if err := validatePlanStep(step); err != nil {
			return types.Plan{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("plan step %d: %s", i+1, err.Error()))
		}
	}
	return plan, nil
}

func validatePlanStep(step types.PlanStep) error {
	if strings.TrimSpace(step.Template) == "" {
		return fmt.Errorf("template is required")
	}
	switch step.Kind {
	case types.PlanStepTrim:
		if len(step.Fields) == 0 {
			return fmt.Errorf("trim step needs at least one field")
		}
	case types.PlanStepDevel:
		if strings.TrimSpace(step.Devel) == "" {
			return fmt.Errorf("devel step needs a devel name")
		}
	default:
		return fmt.Errorf("unknown step kind %q", step.Kind)
	}
	return nil
}

var _ ports.PlanSourcePort = PlanFileAdapter{}
