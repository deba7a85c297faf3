package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbps-tmpl/internal/app"
)

type applyOptions struct {
	InPlace     bool
	CheckSyntax bool
}

func newApplyCommand() *cobra.Command {
	opts := applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply <plan.yaml>",
		Short: "Run a batch of trim and mkdevel steps from a plan file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.InPlace, "in-place", "i", false, "Write every step even if the plan does not set in_place")
	cmd.Flags().BoolVar(&opts.CheckSyntax, "check", false, "Refuse to write a template that no longer parses as shell")
	_ = viper.BindPFlag("check_syntax", cmd.Flags().Lookup("check"))
	return cmd
}

func runApply(ctx context.Context, cmd *cobra.Command, planPath string, opts applyOptions) error {
	service := newAppService()
	result, err := service.Apply(ctx, app.ApplyRequest{
		PlanPath:    planPath,
		InPlace:     opts.InPlace,
		CheckSyntax: resolveBool(cmd, opts.CheckSyntax, "check_syntax", "check"),
	})
	for _, step := range result.Steps {
		state := "printed"
		if step.Written {
			state = "written"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s %s (%s)\n%s\n", step.Kind, step.Template, state, step.Output)
	}
	return err
}
