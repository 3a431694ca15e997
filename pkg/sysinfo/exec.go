package sysinfo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// siWaitDelay bounds how long siRun waits for output pipes after the
// context kills the process; a grandchild holding them open is abandoned.
const siWaitDelay = 500 * time.Millisecond

// siCommand builds subprocesses; tests replace it to fake tool output.
var siCommand = exec.CommandContext

// siLookPath finds executables; tests replace it alongside siCommand.
var siLookPath = exec.LookPath

// siRun runs name with args and returns trimmed stdout. A non-zero exit is
// an error that carries trimmed stderr.
func siRun(ctx context.Context, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := siCommand(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = siWaitDelay
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// siCountLines counts non-empty lines.
func siCountLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
