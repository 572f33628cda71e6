package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List commands exposed by the bridge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommands()
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

func listCommands() error {
	commands, err := getClient().ListCommands(context.Background())
	if err != nil {
		PrintConnectionError(bridgeAddr, err)
		return nil
	}

	if PrintJSON(commands) {
		return nil
	}

	if len(commands) == 0 {
		PrintInfo("No commands registered")
		return nil
	}

	table := NewTable("NAME", "DESCRIPTION")
	for _, c := range commands {
		table.AddRow(c.Name, Truncate(c.Description, 60))
	}
	table.Print()
	return nil
}
