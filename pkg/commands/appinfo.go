package commands

import (
	"context"

	"github.com/glasspane/glasspane/pkg/bridge"
	"github.com/glasspane/glasspane/pkg/types"
)

// NewGetAppInfoCommand returns the command that reports application
// identity and the platform the host is running on
func NewGetAppInfoCommand(info types.AppInfo) bridge.Command {
	return bridge.NewCommand(types.CommandGetAppInfo.String(), "returns application identity and platform details",
		func(ctx context.Context, req struct{}) (types.AppInfo, error) {
			return info, nil
		})
}
