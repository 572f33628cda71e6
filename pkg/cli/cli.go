package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Build information (injected at compile time via ldflags)
var (
	Version = "dev"
)

// defaultBridgeAddr is where a locally served bridge listens
const defaultBridgeAddr = "http://127.0.0.1:1420"

var (
	bridgeAddr string
	authToken  string
	jsonOutput bool
)

// Custom help template with styled output
var helpTemplate = `{{with .Long}}{{. | trim}}

{{end}}{{if .HasAvailableSubCommands}}` + `{{.CommandPath}}` + ` ` + `<command>` + `

{{end}}{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding }}  {{.Short}}
{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}
Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}
`

var rootCmd = &cobra.Command{
	Use:   "glasspane",
	Short: "Desktop command bridge host",
	Long: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("glasspane") + ` - Desktop command bridge host

Serve the localhost command bridge a desktop frontend connects to, and
invoke its commands from the terminal.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		SetJSONOutput(jsonOutput)

		// Auto-load credentials if no token provided
		if authToken == "" {
			authToken = LoadCredentials()
		}
	},
}

func init() {
	// Set custom templates
	rootCmd.SetHelpTemplate(helpTemplate)

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("  %s version %s\n", BrandStyle.Render("glasspane"), Version))

	rootCmd.PersistentFlags().StringVar(&bridgeAddr, "bridge", getEnv("GLASSPANE_BRIDGE", defaultBridgeAddr), "Bridge HTTP address")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", getEnv("GLASSPANE_TOKEN", ""), "Bridge auth token")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getClient() *Client {
	return NewClient(bridgeAddr, authToken)
}
