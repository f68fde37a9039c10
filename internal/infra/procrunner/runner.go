package procrunner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Runner executes external commands, streaming their output to the
// configured writers (the process's stdout/stderr by default).
type Runner struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
}

type Option func(*Runner)

func WithStdout(w io.Writer) Option {
	return func(r *Runner) { r.stdout = w }
}

func WithStderr(w io.Writer) Option {
	return func(r *Runner) { r.stderr = w }
}

func WithStdin(in io.Reader) Option {
	return func(r *Runner) { r.stdin = in }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ProcessRunner = (*Runner)(nil)

func (r *Runner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	// apt and rosdep may prompt (sudo password, tz config); keep stdin wired.
	cmd.Stdin = r.stdin

	err := cmd.Run()
	if err == nil {
		return nil
	}

	op := "procrunner.run"
	if ctx.Err() != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInterrupted,
			Err:  fmt.Errorf("%s: %w", name, ctx.Err()),
		}
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("%s exited with code %d", name, ee.ExitCode()),
		}
	}

	// Spawn failure (command not found, permission, ...).
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  err,
	}
}
