package app

import (
	"xbps-tmpl/internal/adapters"
	"xbps-tmpl/internal/ports"
	"xbps-tmpl/internal/types"
)

type Service struct {
	Templates ports.TemplateStorePort
	DistDir   ports.DistDirPort
	Syntax    ports.SyntaxCheckPort
	Plans     ports.PlanSourcePort
	Format    types.FormatOptions
}

func NewService() Service {
	return Service{
		Templates: adapters.NewTemplateFileAdapter(),
		DistDir:   adapters.NewDistDirAdapter(""),
		Syntax:    adapters.NewShellSyntaxAdapter(),
		Plans:     adapters.NewPlanFileAdapter(),
		Format:    types.DefaultFormatOptions(),
	}
}
