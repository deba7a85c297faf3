package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbps-tmpl/internal/app"
)

type mkdevelOptions struct {
	InPlace     bool
	CheckSyntax bool
}

func newMkDevelCommand() *cobra.Command {
	opts := mkdevelOptions{}
	cmd := &cobra.Command{
		Use:   "mkdevel <pkgname> <develname> <filelist>",
		Short: "Generate a -devel subpackage from the main package file list",
		Long: "develname is given without the -devel suffix. filelist is the newline\n" +
			"separated list of files installed by the main package (xls output).",
		Args: exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkDevel(cmd.Context(), cmd, args, opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.InPlace, "in-place", "i", false, "Append the subpackage to the template")
	cmd.Flags().BoolVar(&opts.CheckSyntax, "check", false, "Refuse to write a template that no longer parses as shell")
	_ = viper.BindPFlag("check_syntax", cmd.Flags().Lookup("check"))
	return cmd
}

func runMkDevel(ctx context.Context, cmd *cobra.Command, args []string, opts mkdevelOptions) error {
	service := newAppService()
	result, err := service.MkDevel(ctx, app.MkDevelRequest{
		PkgName:     args[0],
		DevelName:   args[1],
		FileList:    args[2],
		InPlace:     opts.InPlace,
		CheckSyntax: resolveBool(cmd, opts.CheckSyntax, "check_syntax", "check"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	return nil
}
