package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [args-json]",
	Short: "Invoke a bridge command",
	Long:  `Invoke a named command on the running bridge. Arguments are passed as a single JSON object.`,
	Example: `  glasspane invoke greet '{"name": "World"}'
  glasspane invoke get_app_data_dir`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := ""
		if len(args) == 2 {
			payload = args[1]
		}
		return invokeCommand(args[0], payload)
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}

func invokeCommand(name, payload string) error {
	var args map[string]any
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &args); err != nil {
			PrintErrorMsg("Arguments must be a JSON object")
			return nil
		}
	}

	var data any
	call := func() error {
		var err error
		data, err = getClient().Invoke(context.Background(), name, args)
		return err
	}

	var err error
	if IsJSONOutput() {
		err = call()
	} else {
		err = RunSpinnerWithResult(fmt.Sprintf("Invoking %s...", name), call)
	}
	if err != nil {
		PrintInvokeError(err)
		return nil
	}

	printResult(data)
	return nil
}

// printResult renders a command result for humans, or as JSON in JSON mode
func printResult(data any) {
	if PrintJSON(data) {
		return
	}

	switch v := data.(type) {
	case nil:
		PrintSuccess("ok")
	case string:
		PrintSuccess(v)
	default:
		pretty, err := json.MarshalIndent(v, "  ", "  ")
		if err != nil {
			PrintSuccessf("%v", v)
			return
		}
		PrintSuccess(string(pretty))
	}
}
