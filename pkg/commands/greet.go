package commands

import (
	"context"
	"fmt"

	"github.com/glasspane/glasspane/pkg/bridge"
	"github.com/glasspane/glasspane/pkg/types"
)

// GreetRequest carries the name to greet. Any text is accepted, including
// an empty string.
type GreetRequest struct {
	Name string `json:"name"`
}

// NewGreetCommand returns the greet command. The reply template is a fixed
// string existing frontends match on verbatim, so it must not change.
func NewGreetCommand() bridge.Command {
	return bridge.NewCommand(types.CommandGreet.String(), "returns a greeting for the given name",
		func(ctx context.Context, req GreetRequest) (string, error) {
			return fmt.Sprintf("Hello, %s! You've been greeted from Rust!", req.Name), nil
		})
}
