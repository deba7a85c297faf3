package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xbps-tmpl/internal/types"
)

func TestPlanFileAdapter_LoadPlan(t *testing.T) {
	plan, err := NewPlanFileAdapter().LoadPlan("../../fixtures/plan-sample.yaml")
	require.NoError(t, err)

	assert.True(t, plan.InPlace)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, types.PlanStepTrim, plan.Steps[0].Kind)
	assert.Equal(t, "libfoo", plan.Steps[0].Template)
	assert.Equal(t, []string{"makedepends", "checkdepends"}, plan.Steps[0].Fields)
	assert.Equal(t, "zlib-devel libpng-devel vopt_gtk/gtk+3-devel", plan.Steps[0].Packages)
	assert.Equal(t, types.PlanStepDevel, plan.Steps[1].Kind)
	assert.Equal(t, "libfoo", plan.Steps[1].Devel)
	assert.Contains(t, plan.Steps[1].Files, "/usr/lib/libfoo.so -> libfoo.so.1")
}

func TestPlanFileAdapter_MissingFile(t *testing.T) {
	_, err := NewPlanFileAdapter().LoadPlan(filepath.Join(t.TempDir(), "plan.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestPlanFileAdapter_RejectsInvalidSteps(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "unknown kind",
			content: "steps:\n  - kind: bump\n    template: foo\n",
			message: `plan step 1: unknown step kind "bump"`,
		},
		{
			name:    "missing template",
			content: "steps:\n  - kind: trim\n    fields: [depends]\n",
			message: "plan step 1: template is required",
		},
		{
			name:    "trim without fields",
			content: "steps:\n  - kind: trim\n    template: foo\n    packages: bar\n",
			message: "plan step 1: trim step needs at least one field",
		},
		{
			name:    "devel without name",
			content: "steps:\n  - kind: trim\n    template: foo\n    fields: [depends]\n  - kind: devel\n    template: foo\n",
			message: "plan step 2: devel step needs a devel name",
		},
		{
			name:    "malformed yaml",
			content: "steps: [\n",
			message: "failed to parse plan yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plan.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := NewPlanFileAdapter().LoadPlan(path)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
