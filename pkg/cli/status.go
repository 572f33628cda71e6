package cli

import (
	"context"
	"fmt"

	"github.com/glasspane/glasspane/pkg/host"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show bridge status",
	Long:  `Show the health of the running bridge host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus() error {
	health, err := getClient().Health(context.Background())
	if err != nil {
		PrintConnectionError(bridgeAddr, err)
		return nil
	}

	if PrintJSON(health) {
		return nil
	}

	PrintNewline()
	PrintKeyValueStyled("Status", health["status"], SuccessStyle)
	PrintKeyValue("Name", health["name"])
	PrintKeyValue("Version", health["version"])
	PrintKeyValue("Bridge", bridgeAddr)
	if pid := host.ReadPIDFile(); pid != 0 && processExists(pid) {
		PrintKeyValue("PID", fmt.Sprintf("%d", pid))
	}
	PrintNewline()
	return nil
}
