package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// probeTimeout bounds the java version probe so a wedged binary cannot
// stall Build indefinitely.
const probeTimeout = 5 * time.Second

// JavaVersion runs `<javaPath> --version` and returns the first line of
// the version banner. A failed probe folds trimmed stderr output into
// the returned error.
func JavaVersion(javaPath string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, javaPath, "--version")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("%s --version: %s", javaPath, detail)
		}
		return "", err
	}

	banner := strings.TrimSpace(stdout.String())
	if i := strings.IndexByte(banner, '\n'); i >= 0 {
		banner = strings.TrimSpace(banner[:i])
	}
	return banner, nil
}
