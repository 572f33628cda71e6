package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// outputJSON controls whether commands should output JSON instead of styled text
var outputJSON bool

// SetJSONOutput sets the JSON output mode
func SetJSONOutput(enabled bool) {
	outputJSON = enabled
}

// IsJSONOutput returns true if JSON output mode is enabled
func IsJSONOutput() bool {
	return outputJSON
}

// PrintJSON outputs data as JSON if JSON mode is enabled, returns true if it did
func PrintJSON(data interface{}) bool {
	if !outputJSON {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(data)
	return true
}

// PrintSuccess prints a success message with a green checkmark
func PrintSuccess(msg string) {
	fmt.Printf("  %s %s\n", SuccessStyle.Render(SymbolSuccess), msg)
}

// PrintSuccessf prints a formatted success message
func PrintSuccessf(format string, args ...interface{}) {
	PrintSuccess(fmt.Sprintf(format, args...))
}

// PrintError prints an error message with a red X
func PrintError(err error) {
	fmt.Printf("  %s %s\n", ErrorStyle.Render(SymbolError), ErrorStyle.Render(err.Error()))
}

// PrintErrorMsg prints a simple error message string
func PrintErrorMsg(msg string) {
	fmt.Printf("  %s %s\n", ErrorStyle.Render(SymbolError), ErrorStyle.Render(msg))
}

// PrintWarning prints a warning message with a yellow indicator
func PrintWarning(msg string) {
	fmt.Printf("  %s %s\n", WarningStyle.Render(SymbolWarning), WarningStyle.Render(msg))
}

// PrintInfo prints an info message with an arrow
func PrintInfo(msg string) {
	fmt.Printf("  %s %s\n", InfoStyle.Render(SymbolInfo), msg)
}

// PrintInfof prints a formatted info message
func PrintInfof(format string, args ...interface{}) {
	PrintInfo(fmt.Sprintf(format, args...))
}

// PrintHint prints a subtle hint/suggestion
func PrintHint(msg string) {
	fmt.Printf("\n  %s\n", HintStyle.Render(msg))
}

// PrintSuggestions prints a list of suggestions
func PrintSuggestions(title string, suggestions []string) {
	fmt.Println()
	fmt.Printf("  %s\n", DimStyle.Render(title))
	for _, s := range suggestions {
		fmt.Printf("    %s %s\n", DimStyle.Render(SymbolBullet), s)
	}
}

// PrintHeader prints a section header
func PrintHeader(title string) {
	fmt.Printf("\n  %s\n\n", BoldStyle.Render(title))
}

// PrintKeyValue prints a key-value pair with consistent alignment
func PrintKeyValue(key, value string) {
	styledKey := KeyStyle.Render(key)
	fmt.Printf("  %s %s\n", styledKey, value)
}

// PrintKeyValueStyled prints a key-value pair with a custom value style
func PrintKeyValueStyled(key, value string, valueStyle lipgloss.Style) {
	styledKey := KeyStyle.Render(key)
	fmt.Printf("  %s %s\n", styledKey, valueStyle.Render(value))
}

// PrintNewline prints an empty line
func PrintNewline() {
	fmt.Println()
}

// Table represents a styled table
type Table struct {
	Headers []string
	Rows    [][]string
	Widths  []int
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		Headers: headers,
		Widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate to match header count
	row := make([]string, len(t.Headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
			if len(cells[i]) > t.Widths[i] {
				t.Widths[i] = len(cells[i])
			}
		}
	}
	t.Rows = append(t.Rows, row)
}

// Print renders the table to stdout
func (t *Table) Print() {
	if len(t.Rows) == 0 {
		return
	}

	// Print headers
	fmt.Print("  ")
	for i, h := range t.Headers {
		style := TableHeaderStyle.Width(t.Widths[i] + 2)
		fmt.Print(style.Render(h))
	}
	fmt.Println()

	// Print separator
	fmt.Print("  ")
	for i := range t.Headers {
		separator := strings.Repeat("─", t.Widths[i])
		fmt.Print(DimStyle.Render(separator), "  ")
	}
	fmt.Println()

	// Print rows
	for _, row := range t.Rows {
		fmt.Print("  ")
		for i, cell := range row {
			style := TableCellStyle.Width(t.Widths[i] + 2)
			fmt.Print(style.Render(cell))
		}
		fmt.Println()
	}
}

// Truncate truncates a string to maxLen, adding "..." if needed
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PrintConnectionError prints a styled connection error with suggestions
func PrintConnectionError(addr string, err error) {
	fmt.Println()
	PrintErrorMsg("Cannot connect to bridge")
	fmt.Println()
	fmt.Printf("  The bridge at %s is not responding.\n", CodeStyle.Render(addr))

	PrintSuggestions("Suggestions:", []string{
		"Start the host: " + CodeStyle.Render("glasspane serve"),
		"Verify the bridge address with " + CodeStyle.Render("glasspane config show"),
		"Check your " + CodeStyle.Render("GLASSPANE_BRIDGE") + " environment variable",
	})
	fmt.Println()
}
