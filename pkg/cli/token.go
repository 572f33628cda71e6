package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glasspane/glasspane/pkg/common"
	"github.com/spf13/cobra"
)

type credentials struct {
	Token string `json:"token"`
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the saved bridge token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <token>",
	Short: "Save a bridge token for future invocations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := SaveCredentials(args[0]); err != nil {
			PrintError(err)
			return nil
		}
		PrintSuccess("Token saved")
		return nil
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved bridge token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := LoadCredentials()
		if token == "" {
			PrintInfo("No token saved")
			PrintHint("Save one with: glasspane token set <token>")
			return nil
		}
		if PrintJSON(credentials{Token: token}) {
			return nil
		}
		fmt.Printf("  %s\n", CodeStyle.Render(token))
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved bridge token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ClearCredentials(); err != nil {
			PrintError(err)
			return nil
		}
		PrintSuccess("Token cleared")
		return nil
	},
}

var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and save a random bridge token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token := common.GenerateAuthToken()
		if err := SaveCredentials(token); err != nil {
			PrintError(err)
			return nil
		}

		PrintSuccess("Token generated and saved")
		fmt.Printf("  %s\n", CodeStyle.Render(token))
		PrintNewline()
		PrintHint("Set bridge.authToken to this value in the host config")
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenShowCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	tokenCmd.AddCommand(tokenGenerateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func credentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "glasspane", "credentials"), nil
}

// LoadCredentials returns the saved bridge token, or "" when none is stored.
func LoadCredentials() string {
	path, err := credentialsPath()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ""
	}
	return creds.Token
}

func SaveCredentials(token string) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(credentials{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func ClearCredentials() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
