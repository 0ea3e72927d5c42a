package shared

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandAvailable checks if an external tool is installed and available in
// the system's PATH.
func CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RunCommand runs an external tool, inheriting stdout/stderr so the tool's
// own progress output (yt-dlp, demucs) stays visible.
func RunCommand(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// RunCommandOutput runs an external tool and captures its combined output.
func RunCommandOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w\noutput: %s", name, err, TruncateString(string(output), 400))
	}
	return strings.TrimSpace(string(output)), nil
}
