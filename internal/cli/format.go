package cli

import (
	"context"

	"github.com/spf13/cobra"

	"xbps-tmpl/internal/app"
)

type formatOptions struct {
	Deps []string
}

func newFormatCommand() *cobra.Command {
	opts := formatOptions{}
	cmd := &cobra.Command{
		Use:   "format <packages>",
		Short: "Print formatted dependency fields without touching a template",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Deps, "deps", nil, "Dependency fields to format")
	return cmd
}

func runFormat(ctx context.Context, cmd *cobra.Command, packages string, opts formatOptions) error {
	service := newAppService()
	result, err := service.FormatDeps(ctx, app.FormatRequest{
		Fields:   opts.Deps,
		Packages: packages,
	})
	if err != nil {
		return err
	}
	printValues(cmd, result.Values)
	return nil
}
