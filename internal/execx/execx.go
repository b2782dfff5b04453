// Package execx runs external build tools with captured output and
// readable command logging.
package execx

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
)

// Result holds the outcome of one external tool invocation.
type Result struct {
	Command  string // shell-quoted command line, for diagnostics
	Output   string // combined stdout+stderr
	Duration time.Duration
}

// Run executes name with args, applying the timeout when non-zero.
// The combined output is always returned, also on failure, so callers
// can surface tool diagnostics.
func Run(ctx context.Context, log *zap.SugaredLogger, timeout time.Duration, name string, args ...string) (*Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	quoted := shellquote.Join(append([]string{name}, args...)...)
	log.Debugw("running external tool", "command", quoted)

	var buf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Command:  quoted,
		Output:   buf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		return res, errors.Wrapf(err, "command failed: %s", quoted)
	}

	log.Debugw("external tool finished", "command", name, "duration", res.Duration)
	return res, nil
}
