package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glasspane/glasspane/pkg/types"
)

const testIdentifier = "com.example.widget"

// newTestResolver builds a resolver pinned to a platform with a fake
// environment and home directory.
func newTestResolver(goos string, env map[string]string, home string, homeErr error) *Resolver {
	return &Resolver{
		identifier: testIdentifier,
		goos:       goos,
		getenv: func(key string) string {
			return env[key]
		},
		userHome: func() (string, error) {
			return home, homeErr
		},
	}
}

func TestResolver_Linux_XDGOverrides(t *testing.T) {
	env := map[string]string{
		"XDG_DATA_HOME":   "/custom/data",
		"XDG_CONFIG_HOME": "/custom/config",
		"XDG_CACHE_HOME":  "/custom/cache",
	}
	r := newTestResolver("linux", env, "/home/kit", nil)

	tests := []struct {
		name    string
		resolve func() (string, error)
		want    string
	}{
		{"data", r.DataDir, filepath.Join("/custom/data", testIdentifier)},
		{"config", r.ConfigDir, filepath.Join("/custom/config", testIdentifier)},
		{"cache", r.CacheDir, filepath.Join("/custom/cache", testIdentifier)},
		{"log", r.LogDir, filepath.Join("/custom/data", testIdentifier, "logs")},
	}
	for _, tt := range tests {
		got, err := tt.resolve()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_Linux_HomeFallback(t *testing.T) {
	r := newTestResolver("linux", nil, "/home/kit", nil)

	tests := []struct {
		name    string
		resolve func() (string, error)
		want    string
	}{
		{"data", r.DataDir, filepath.Join("/home/kit", ".local", "share", testIdentifier)},
		{"config", r.ConfigDir, filepath.Join("/home/kit", ".config", testIdentifier)},
		{"cache", r.CacheDir, filepath.Join("/home/kit", ".cache", testIdentifier)},
		{"log", r.LogDir, filepath.Join("/home/kit", ".local", "share", testIdentifier, "logs")},
	}
	for _, tt := range tests {
		got, err := tt.resolve()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_Darwin(t *testing.T) {
	r := newTestResolver("darwin", nil, "/Users/kit", nil)

	tests := []struct {
		name    string
		resolve func() (string, error)
		want    string
	}{
		{"data", r.DataDir, filepath.Join("/Users/kit", "Library", "Application Support", testIdentifier)},
		{"config", r.ConfigDir, filepath.Join("/Users/kit", "Library", "Application Support", testIdentifier)},
		{"cache", r.CacheDir, filepath.Join("/Users/kit", "Library", "Caches", testIdentifier)},
		{"log", r.LogDir, filepath.Join("/Users/kit", "Library", "Logs", testIdentifier)},
	}
	for _, tt := range tests {
		got, err := tt.resolve()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_Windows(t *testing.T) {
	env := map[string]string{
		"APPDATA":      `C:\Users\kit\AppData\Roaming`,
		"LOCALAPPDATA": `C:\Users\kit\AppData\Local`,
	}
	r := newTestResolver("windows", env, "", nil)

	tests := []struct {
		name    string
		resolve func() (string, error)
		want    string
	}{
		{"data", r.DataDir, filepath.Join(`C:\Users\kit\AppData\Roaming`, testIdentifier)},
		{"config", r.ConfigDir, filepath.Join(`C:\Users\kit\AppData\Roaming`, testIdentifier)},
		{"cache", r.CacheDir, filepath.Join(`C:\Users\kit\AppData\Local`, testIdentifier)},
		{"log", r.LogDir, filepath.Join(`C:\Users\kit\AppData\Local`, testIdentifier, "logs")},
	}
	for _, tt := range tests {
		got, err := tt.resolve()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolver_Windows_MissingAppData(t *testing.T) {
	r := newTestResolver("windows", nil, "", nil)

	for _, resolve := range []func() (string, error){r.DataDir, r.ConfigDir, r.CacheDir, r.LogDir} {
		got, err := resolve()
		if err == nil {
			t.Fatal("expected error when APPDATA/LOCALAPPDATA are unset")
		}
		if got != "" {
			t.Errorf("expected empty path on error, got %q", got)
		}
		var pathErr *types.ErrPathResolution
		if !errors.As(err, &pathErr) {
			t.Errorf("expected ErrPathResolution, got %T", err)
		}
	}
}

func TestResolver_HomeUnavailable(t *testing.T) {
	r := newTestResolver("linux", nil, "", fmt.Errorf("$HOME is not defined"))

	_, err := r.DataDir()
	if err == nil {
		t.Fatal("expected error when home cannot be determined")
	}

	var pathErr *types.ErrPathResolution
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected ErrPathResolution, got %T", err)
	}
	if pathErr.Dir != "app data" {
		t.Errorf("expected dir %q, got %q", "app data", pathErr.Dir)
	}
	if pathErr.Reason != "$HOME is not defined" {
		t.Errorf("unexpected reason: %q", pathErr.Reason)
	}
}

func TestResolver_All(t *testing.T) {
	env := map[string]string{"XDG_DATA_HOME": "/custom/data"}
	r := newTestResolver("linux", env, "/home/kit", nil)

	all, err := r.All()
	if err != nil {
		t.Fatal(err)
	}
	if all.DataDir != filepath.Join("/custom/data", testIdentifier) {
		t.Errorf("unexpected data dir: %q", all.DataDir)
	}
	if all.ConfigDir == "" || all.CacheDir == "" || all.LogDir == "" {
		t.Errorf("expected every directory resolved, got %+v", all)
	}
}

func TestResolver_All_PropagatesError(t *testing.T) {
	r := newTestResolver("linux", nil, "", fmt.Errorf("$HOME is not defined"))

	_, err := r.All()
	if err == nil {
		t.Fatal("expected error")
	}
	var pathErr *types.ErrPathResolution
	if !errors.As(err, &pathErr) {
		t.Fatalf("expected ErrPathResolution, got %T", err)
	}
}

func TestNewResolver_UsesProcessEnvironment(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/from/process/env")

	r := NewResolver(testIdentifier)
	if r.goos != "linux" && r.goos != "darwin" && r.goos != "windows" {
		t.Skipf("unhandled test platform %s", r.goos)
	}
	if r.goos != "linux" {
		t.Skip("XDG assertion only valid on linux")
	}

	got, err := r.DataDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/from/process/env", testIdentifier) {
		t.Errorf("got %q", got)
	}
}
