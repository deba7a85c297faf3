package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbps-tmpl/internal/app"
)

type trimOptions struct {
	Deps        []string
	InPlace     bool
	CheckSyntax bool
}

func newTrimCommand() *cobra.Command {
	opts := trimOptions{}
	cmd := &cobra.Command{
		Use:   "trim <template> <packages>",
		Short: "Reformat dependency fields of a template",
		Long: "Format a whitespace or newline separated package list for each --deps field.\n" +
			"Packages prefixed with vopt_ become $(vopt_if ...) calls. With -i the\n" +
			"fields are replaced in srcpkgs/<template>/template.",
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(cmd.Context(), cmd, args[0], args[1], opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Deps, "deps", nil, "Dependency fields to rewrite")
	cmd.Flags().BoolVarP(&opts.InPlace, "in-place", "i", false, "Replace dependencies in the template")
	cmd.Flags().BoolVar(&opts.CheckSyntax, "check", false, "Refuse to write a template that no longer parses as shell")
	_ = viper.BindPFlag("check_syntax", cmd.Flags().Lookup("check"))
	return cmd
}

func runTrim(ctx context.Context, cmd *cobra.Command, template string, packages string, opts trimOptions) error {
	service := newAppService()
	result, err := service.Trim(ctx, app.TrimRequest{
		Template:    template,
		Fields:      opts.Deps,
		Packages:    packages,
		InPlace:     opts.InPlace,
		CheckSyntax: resolveBool(cmd, opts.CheckSyntax, "check_syntax", "check"),
	})
	if err != nil {
		return err
	}
	printValues(cmd, result.Values)
	return nil
}

func printValues(cmd *cobra.Command, values []app.FieldValue) {
	for _, value := range values {
		fmt.Fprintln(cmd.OutOrStdout(), value.Value)
	}
}
