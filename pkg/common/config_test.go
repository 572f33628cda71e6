package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glasspane/glasspane/pkg/types"
	"github.com/stretchr/testify/assert"
)

// writeConfigFile writes contents to a temp file and points
// $GLASSPANE_CONFIG at it so discovery is hermetic.
func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnvVar, path)
	return path
}

func TestNewConfigManager_Defaults(t *testing.T) {
	writeConfigFile(t, "config.yaml", "{}")

	cm, err := NewConfigManager[types.AppConfig]()
	assert.NoError(t, err)
	assert.NotNil(t, cm)

	config := cm.GetConfig()
	assert.Equal(t, "glasspane", config.App.Name)
	assert.Equal(t, "com.glasspane.dev", config.App.Identifier)
	assert.Equal(t, "127.0.0.1", config.Bridge.Host)
	assert.Equal(t, 1420, config.Bridge.Port)
	assert.Equal(t, 10*time.Second, config.Bridge.ShutdownTimeout)
	assert.True(t, config.PrettyLogs)
	assert.False(t, config.DebugMode)
}

func TestNewConfigManager_YAMLOverride(t *testing.T) {
	writeConfigFile(t, "config.yaml", `
app:
  identifier: com.example.widget
bridge:
  port: 9000
`)

	cm, err := NewConfigManager[types.AppConfig]()
	assert.NoError(t, err)

	config := cm.GetConfig()
	assert.Equal(t, "com.example.widget", config.App.Identifier)
	assert.Equal(t, 9000, config.Bridge.Port)

	// Keys absent from the user file keep their defaults
	assert.Equal(t, "glasspane", config.App.Name)
	assert.Equal(t, "127.0.0.1", config.Bridge.Host)
}

func TestNewConfigManager_JSONOverride(t *testing.T) {
	writeConfigFile(t, "config.json", `{"bridge": {"port": 7777, "authToken": "secret"}}`)

	cm, err := NewConfigManager[types.AppConfig]()
	assert.NoError(t, err)

	config := cm.GetConfig()
	assert.Equal(t, 7777, config.Bridge.Port)
	assert.Equal(t, "secret", config.Bridge.AuthToken)
}

func TestNewConfigManager_DurationParsing(t *testing.T) {
	writeConfigFile(t, "config.yaml", `
bridge:
  shutdownTimeout: 250ms
`)

	cm, err := NewConfigManager[types.AppConfig]()
	assert.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cm.GetConfig().Bridge.ShutdownTimeout)
}

func TestNewConfigManager_MissingExplicitFile(t *testing.T) {
	t.Setenv(configEnvVar, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := NewConfigManager[types.AppConfig]()
	assert.Error(t, err)
}

func TestNewConfigManager_MalformedFile(t *testing.T) {
	writeConfigFile(t, "config.yaml", "bridge: [not: a: mapping")

	_, err := NewConfigManager[types.AppConfig]()
	assert.Error(t, err)
}

func TestNewConfigManager_Addr(t *testing.T) {
	writeConfigFile(t, "config.yaml", `
bridge:
  host: 0.0.0.0
  port: 4242
`)

	cm, err := NewConfigManager[types.AppConfig]()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4242", cm.GetConfig().Bridge.Addr())
}
