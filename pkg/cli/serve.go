package cli

import (
	"fmt"

	"github.com/glasspane/glasspane/pkg/common"
	"github.com/glasspane/glasspane/pkg/host"
	"github.com/glasspane/glasspane/pkg/types"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bridge host in the foreground",
	Long:  `Run the bridge host in the foreground until interrupted. Use 'glasspane start' to run it in the background instead.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Bind port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cm, err := common.NewConfigManager[types.AppConfig]()
	if err != nil {
		return err
	}

	config := cm.GetConfig()
	if serveHost != "" {
		config.Bridge.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		config.Bridge.Port = servePort
	}

	h, err := host.NewHostWithConfig(config)
	if err != nil {
		return err
	}

	if err := host.WritePIDFile(); err != nil {
		PrintWarning(fmt.Sprintf("Could not write pid file: %s", err))
	}
	defer host.RemovePIDFile()

	return h.Start()
}
