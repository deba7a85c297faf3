package types

type PlanStepKind string

const (
	PlanStepTrim  PlanStepKind = "trim"
	PlanStepDevel PlanStepKind = "devel"
)

// Plan is a batch of template edits read from a YAML file.
type Plan struct {
	InPlace bool       `yaml:"in_place"`
	Steps   []PlanStep `yaml:"steps"`
}

type PlanStep struct {
	Kind     PlanStepKind `yaml:"kind"`
	Template string       `yaml:"template"`
	Fields   []string     `yaml:"fields,omitempty"`
	Packages string       `yaml:"packages,omitempty"`
	Devel    string       `yaml:"devel,omitempty"`
	Files    string       `yaml:"files,omitempty"`
}
