package cli

import (
	"errors"
	"net"
	"strings"
	"syscall"
)

// errorSuggestions returns hints for errors the bridge reports in envelopes
func errorSuggestions(err error) []string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "command not found"):
		return []string{
			"List available commands: " + CodeStyle.Render("glasspane commands"),
		}
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "token required"):
		return []string{
			"Pass a token with: " + CodeStyle.Render("--token <token>"),
			"Or save one with: " + CodeStyle.Render("glasspane token set <token>"),
		}
	case strings.Contains(msg, "invalid payload"):
		return []string{
			"Arguments must be a single JSON object, e.g. " + CodeStyle.Render(`'{"name": "World"}'`),
		}
	}
	return nil
}

// isConnectionError reports whether err looks like the bridge being unreachable
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// PrintInvokeError renders a bridge failure with context-appropriate hints
func PrintInvokeError(err error) {
	if isConnectionError(err) {
		PrintConnectionError(bridgeAddr, err)
		return
	}

	PrintError(err)
	if suggestions := errorSuggestions(err); len(suggestions) > 0 {
		PrintNewline()
		PrintSuggestions("Suggestions:", suggestions)
	}
}
