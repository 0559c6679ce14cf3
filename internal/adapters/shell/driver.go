// Package shell provides the cargo build driver.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.BuildDriver = (*Driver)(nil)

// Driver implements ports.BuildDriver by invoking cargo inside the
// materialized project directory. Compiler and program output is
// relayed verbatim to the configured writers; the driver never
// rewrites, buffers, or reorders what cargo produces.
type Driver struct {
	bin    string
	stdout io.Writer
	stderr io.Writer
	logger ports.Logger
}

// NewDriver creates a Driver invoking bin, relaying output to the
// given writers.
func NewDriver(bin string, stdout, stderr io.Writer, logger ports.Logger) *Driver {
	return &Driver{
		bin:    bin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run executes "cargo run" in projectDir and returns the process exit
// status. A non-zero status is reported as a build failure carrying the
// status in its metadata; cargo's own diagnostics on stderr are the
// user-facing explanation.
func (d *Driver) Run(ctx context.Context, projectDir string, opts domain.EvalOptions) (int, error) {
	args := []string{"run"}
	if opts.Quiet {
		args = append(args, "--quiet")
	}

	cmd := exec.CommandContext(ctx, d.bin, args...) //nolint:gosec // binary comes from configuration
	cmd.Dir = projectDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, zerr.Wrap(err, "failed to open stderr pipe")
	}

	d.logger.Info(fmt.Sprintf("running %s %v in %s", d.bin, args, projectDir))
	if err := cmd.Start(); err != nil {
		return -1, zerr.With(zerr.Wrap(err, "failed to start cargo"), "bin", d.bin)
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(d.stdout, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(d.stderr, stderr)
		return err
	})
	relayErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return code, zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, "cargo exited with failure"), "exit_code", code), "dir", projectDir)
		}
		return -1, zerr.Wrap(err, "cargo did not run to completion")
	}
	if relayErr != nil {
		d.logger.Warn(fmt.Sprintf("output relay interrupted: %v", relayErr))
	}

	return 0, nil
}
