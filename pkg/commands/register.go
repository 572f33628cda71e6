package commands

import (
	"github.com/glasspane/glasspane/pkg/bridge"
	"github.com/glasspane/glasspane/pkg/types"
)

// Builtin returns every built-in command. The host registers these once
// at startup before the bridge starts accepting invocations.
func Builtin(info types.AppInfo, resolver PathResolver) []bridge.Command {
	return []bridge.Command{
		NewGreetCommand(),
		NewGetAppDataDirCommand(resolver),
		NewGetAppPathsCommand(resolver),
		NewGetAppInfoCommand(info),
	}
}
