package types

// CommandName is a type-safe command identifier
type CommandName string

// Builtin command names - add new commands here
const (
	CommandGreet         CommandName = "greet"
	CommandGetAppDataDir CommandName = "get_app_data_dir"
	CommandGetAppPaths   CommandName = "get_app_paths"
	CommandGetAppInfo    CommandName = "get_app_info"
)

// String returns the string representation
func (c CommandName) String() string {
	return string(c)
}

// AppPaths holds every per-application directory the host resolves at startup
type AppPaths struct {
	DataDir   string `json:"data_dir"`
	ConfigDir string `json:"config_dir"`
	CacheDir  string `json:"cache_dir"`
	LogDir    string `json:"log_dir"`
}

// AppInfo is the identity snapshot commands hand back to the frontend
type AppInfo struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
}
