package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glasspane/glasspane/pkg/common"
	"github.com/glasspane/glasspane/pkg/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage host configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig() error {
	cm, err := common.NewConfigManager[types.AppConfig]()
	if err != nil {
		PrintError(err)
		return nil
	}

	if PrintJSON(cm.Raw()) {
		return nil
	}

	rendered, err := yaml.Marshal(cm.Raw())
	if err != nil {
		PrintError(err)
		return nil
	}

	PrintNewline()
	for _, line := range strings.Split(strings.TrimRight(string(rendered), "\n"), "\n") {
		fmt.Printf("  %s\n", line)
	}
	PrintNewline()
	return nil
}

func initConfig() error {
	path, err := common.DefaultUserConfigPath()
	if err != nil {
		PrintError(err)
		return nil
	}

	if _, err := os.Stat(path); err == nil {
		PrintWarning(fmt.Sprintf("Config already exists at %s", path))
		PrintHint("Edit it directly, or remove it first to regenerate")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		PrintError(err)
		return nil
	}
	if err := os.WriteFile(path, common.DefaultConfigYAML(), 0o644); err != nil {
		PrintError(err)
		return nil
	}

	PrintSuccessf("Wrote default config to %s", path)
	return nil
}
