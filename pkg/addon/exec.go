package addon

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// waitDelay bounds how long a killed command's children may hold its
// output pipes open.
const waitDelay = 500 * time.Millisecond

// command builds the shell subprocess.
var command = exec.CommandContext

// shellArgv returns the host shell invocation for a command line.
func shellArgv(line string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", line}
	}
	return "sh", []string{"-c", line}
}

// runExec runs line through the host shell and returns its trimmed stdout.
func runExec(ctx context.Context, line string) (string, error) {
	name, args := shellArgv(line)
	var stdout, stderr bytes.Buffer
	cmd := command(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("exec %q: %w", line, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("exec %q: %w: %s", line, err, msg)
		}
		return "", fmt.Errorf("exec %q: %w", line, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}
