package commands

import (
	"context"

	"github.com/glasspane/glasspane/pkg/bridge"
	"github.com/glasspane/glasspane/pkg/types"
)

// PathResolver resolves per-application directories for the configured
// application identifier
type PathResolver interface {
	DataDir() (string, error)
	All() (types.AppPaths, error)
}

// NewGetAppDataDirCommand returns the command that resolves the
// per-application data directory. It either returns a non-empty path or
// a path resolution error, never both empty.
func NewGetAppDataDirCommand(resolver PathResolver) bridge.Command {
	return bridge.NewCommand(types.CommandGetAppDataDir.String(), "returns the per-application data directory",
		func(ctx context.Context, req struct{}) (string, error) {
			return resolver.DataDir()
		})
}

// NewGetAppPathsCommand returns the command that resolves every
// per-application directory in one call
func NewGetAppPathsCommand(resolver PathResolver) bridge.Command {
	return bridge.NewCommand(types.CommandGetAppPaths.String(), "returns all per-application directories",
		func(ctx context.Context, req struct{}) (types.AppPaths, error) {
			return resolver.All()
		})
}
