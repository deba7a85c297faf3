package ports

import "xbps-tmpl/internal/types"

type PlanSourcePort interface {
	LoadPlan(path string) (types.Plan, error)
}
