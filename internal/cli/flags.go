package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbps-tmpl/internal/adapters"
	"xbps-tmpl/internal/app"
	"xbps-tmpl/internal/types"
)

func newAppService() app.Service {
	service := app.NewService()
	service.DistDir = adapters.NewDistDirAdapter(viper.GetString("distdir"))
	service.Format = types.FormatOptions{
		Width:  viper.GetInt("width"),
		Marker: viper.GetString("marker"),
	}
	return service
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
