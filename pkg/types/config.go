package types

import (
	"fmt"
	"time"
)

// AppConfig is the root configuration for the glasspane host
type AppConfig struct {
	DebugMode  bool `key:"debugMode" json:"debug_mode"`
	PrettyLogs bool `key:"prettyLogs" json:"pretty_logs"`

	App    AppInfoConfig `key:"app" json:"app"`
	Bridge BridgeConfig  `key:"bridge" json:"bridge"`
}

// ----------------------------------------------------------------------------
// Application Identity
// ----------------------------------------------------------------------------

// AppInfoConfig identifies the application to the platform. The identifier
// is a reverse-DNS bundle id and becomes the final path segment of every
// per-application directory.
type AppInfoConfig struct {
	Name       string `key:"name" json:"name"`
	Identifier string `key:"identifier" json:"identifier"`
	Version    string `key:"version" json:"version"`
}

// Validate checks that the identity fields required for path resolution are set
func (c AppInfoConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Identifier == "" {
		return fmt.Errorf("app.identifier is required")
	}
	return nil
}

// ----------------------------------------------------------------------------
// Bridge Configuration
// ----------------------------------------------------------------------------

// BridgeConfig configures the command-dispatch bridge the frontend talks to
type BridgeConfig struct {
	Host             string        `key:"host" json:"host"`
	Port             int           `key:"port" json:"port"`
	AuthToken        string        `key:"authToken" json:"auth_token"`
	ShutdownTimeout  time.Duration `key:"shutdownTimeout" json:"shutdown_timeout"`
	EnablePrettyLogs bool          `key:"enablePrettyLogs" json:"enable_pretty_logs"`
	CORS             CORSConfig    `key:"cors" json:"cors"`
}

// Addr returns the host:port the bridge listens on
func (c BridgeConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins []string `key:"allowOrigins" json:"allow_origins"`
	AllowedMethods []string `key:"allowMethods" json:"allow_methods"`
	AllowedHeaders []string `key:"allowHeaders" json:"allow_headers"`
}
