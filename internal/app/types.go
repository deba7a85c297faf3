package app

import "xbps-tmpl/internal/types"

type FieldValue struct {
	Field types.DepField
	Value string
}

type FormatRequest struct {
	Fields   []string
	Packages string
}

type FormatResult struct {
	Values []FieldValue
}

type TrimRequest struct {
	Template    string
	Fields      []string
	Packages    string
	InPlace     bool
	CheckSyntax bool
}

type TrimResult struct {
	Path     string
	Values   []FieldValue
	Replaced []types.DepField
	Written  bool
}

type MkDevelRequest struct {
	PkgName     string
	DevelName   string
	FileList    string
	InPlace     bool
	CheckSyntax bool
}

type MkDevelResult struct {
	Path    string
	Stanza  types.DevelStanza
	Text    string
	Written bool
}

type ApplyRequest struct {
	PlanPath    string
	InPlace     bool
	CheckSyntax bool
}

type ApplyStepResult struct {
	Kind     types.PlanStepKind
	Template string
	Output   string
	Written  bool
}

type ApplyResult struct {
	Steps []ApplyStepResult
}
