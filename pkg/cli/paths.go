package cli

import (
	"github.com/glasspane/glasspane/pkg/common"
	"github.com/glasspane/glasspane/pkg/paths"
	"github.com/glasspane/glasspane/pkg/types"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show per-app filesystem paths",
	Long:  `Resolve the platform data, config, cache, and log directories for the configured app identifier.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPaths()
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func showPaths() error {
	cm, err := common.NewConfigManager[types.AppConfig]()
	if err != nil {
		PrintError(err)
		return nil
	}
	config := cm.GetConfig()

	appPaths, err := paths.NewResolver(config.App.Identifier).All()
	if err != nil {
		PrintError(err)
		return nil
	}

	if PrintJSON(appPaths) {
		return nil
	}

	PrintNewline()
	PrintKeyValue("Data", appPaths.DataDir)
	PrintKeyValue("Config", appPaths.ConfigDir)
	PrintKeyValue("Cache", appPaths.CacheDir)
	PrintKeyValue("Logs", appPaths.LogDir)
	PrintNewline()
	return nil
}
