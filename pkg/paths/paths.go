package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/glasspane/glasspane/pkg/types"
)

// Resolver maps an application identifier to the per-application
// directories the platform expects. Lookups never touch the filesystem;
// they only combine environment variables and the user home directory,
// so a resolved path may not exist yet.
type Resolver struct {
	identifier string
	goos       string
	getenv     func(string) string
	userHome   func() (string, error)
}

func NewResolver(identifier string) *Resolver {
	return &Resolver{
		identifier: identifier,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		userHome:   os.UserHomeDir,
	}
}

// DataDir returns the per-application data directory
func (r *Resolver) DataDir() (string, error) {
	switch r.goos {
	case "windows":
		if dir := r.getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		return "", &types.ErrPathResolution{Dir: "app data", Reason: "%APPDATA% is not set"}
	case "darwin":
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app data", Reason: err.Error()}
		}
		return filepath.Join(home, "Library", "Application Support", r.identifier), nil
	default:
		if dir := r.getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app data", Reason: err.Error()}
		}
		return filepath.Join(home, ".local", "share", r.identifier), nil
	}
}

// ConfigDir returns the per-application config directory
func (r *Resolver) ConfigDir() (string, error) {
	switch r.goos {
	case "windows":
		if dir := r.getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		return "", &types.ErrPathResolution{Dir: "app config", Reason: "%APPDATA% is not set"}
	case "darwin":
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app config", Reason: err.Error()}
		}
		return filepath.Join(home, "Library", "Application Support", r.identifier), nil
	default:
		if dir := r.getenv("XDG_CONFIG_HOME"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app config", Reason: err.Error()}
		}
		return filepath.Join(home, ".config", r.identifier), nil
	}
}

// CacheDir returns the per-application cache directory
func (r *Resolver) CacheDir() (string, error) {
	switch r.goos {
	case "windows":
		if dir := r.getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		return "", &types.ErrPathResolution{Dir: "app cache", Reason: "%LOCALAPPDATA% is not set"}
	case "darwin":
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app cache", Reason: err.Error()}
		}
		return filepath.Join(home, "Library", "Caches", r.identifier), nil
	default:
		if dir := r.getenv("XDG_CACHE_HOME"); dir != "" {
			return filepath.Join(dir, r.identifier), nil
		}
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app cache", Reason: err.Error()}
		}
		return filepath.Join(home, ".cache", r.identifier), nil
	}
}

// LogDir returns the per-application log directory. On darwin logs live
// under ~/Library/Logs; elsewhere they nest inside the data directory.
func (r *Resolver) LogDir() (string, error) {
	switch r.goos {
	case "windows":
		if dir := r.getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, r.identifier, "logs"), nil
		}
		return "", &types.ErrPathResolution{Dir: "app log", Reason: "%LOCALAPPDATA% is not set"}
	case "darwin":
		home, err := r.userHome()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app log", Reason: err.Error()}
		}
		return filepath.Join(home, "Library", "Logs", r.identifier), nil
	default:
		dataDir, err := r.DataDir()
		if err != nil {
			return "", &types.ErrPathResolution{Dir: "app log", Reason: err.Error()}
		}
		return filepath.Join(dataDir, "logs"), nil
	}
}

// All resolves every per-application directory in one call
func (r *Resolver) All() (types.AppPaths, error) {
	dataDir, err := r.DataDir()
	if err != nil {
		return types.AppPaths{}, err
	}
	configDir, err := r.ConfigDir()
	if err != nil {
		return types.AppPaths{}, err
	}
	cacheDir, err := r.CacheDir()
	if err != nil {
		return types.AppPaths{}, err
	}
	logDir, err := r.LogDir()
	if err != nil {
		return types.AppPaths{}, err
	}

	return types.AppPaths{
		DataDir:   dataDir,
		ConfigDir: configDir,
		CacheDir:  cacheDir,
		LogDir:    logDir,
	}, nil
}
