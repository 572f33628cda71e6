package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/glasspane/glasspane/pkg/host"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bridge host in the background",
	RunE:  runStart,
}

func init() {
	startCmd.Flags().StringVar(&serveHost, "host", "", "Bind address (overrides config)")
	startCmd.Flags().IntVar(&servePort, "port", 0, "Bind port (overrides config)")
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	// Already running?
	if pid := host.ReadPIDFile(); pid != 0 && processExists(pid) {
		PrintWarning("Already running")
		PrintHint(fmt.Sprintf("PID %d. Use 'glasspane stop' to stop.", pid))
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}
	exe, _ = filepath.EvalSymlinks(exe)

	// Re-exec as a detached serve process, preserving overrides
	spawnArgs := []string{"serve"}
	if serveHost != "" {
		spawnArgs = append(spawnArgs, "--host", serveHost)
	}
	if cmd.Flags().Changed("port") {
		spawnArgs = append(spawnArgs, "--port", fmt.Sprintf("%d", servePort))
	}

	proc := exec.Command(exe, spawnArgs...)
	proc.Dir = "/"
	proc.Stdin = nil
	proc.Stdout = nil
	proc.Stderr = nil
	proc.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := proc.Start(); err != nil {
		PrintErrorMsg(fmt.Sprintf("Failed to start: %s", err))
		return nil
	}

	// Wait briefly for the host to bind and write its pid
	time.Sleep(200 * time.Millisecond)

	if pid := host.ReadPIDFile(); pid != 0 && processExists(pid) {
		PrintSuccess("Started")
		PrintKeyValue("PID", fmt.Sprintf("%d", pid))
		PrintKeyValue("Bridge", bridgeAddr)
	} else {
		PrintErrorMsg("Failed to start")
		PrintHint("Run 'glasspane serve' to see startup errors")
	}

	return nil
}

func processExists(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
