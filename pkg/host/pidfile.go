package host

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PID file for the stop command
var pidPath = func() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "glasspane", "glasspane.pid")
}()

func WritePIDFile() error {
	if err := os.MkdirAll(filepath.Dir(pidPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(pidPath, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func RemovePIDFile() {
	os.Remove(pidPath)
}

func ReadPIDFile() int {
	data, err := os.ReadFile(pidPath)
	if err != nil {
		return 0
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return pid
}
