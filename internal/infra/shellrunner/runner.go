package shellrunner

import (
	"context"
	"fmt"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Runner executes command lines as `bash -c "source prepare.sh && <cmd>"`.
// The script is sourced fresh for every call so exported variables reach the
// command without ever being captured or cached on the Go side.
type Runner struct {
	procs  ports.ProcessRunner
	script string
}

type Option func(*Runner)

// WithPrepareScript overrides the sourced script name (relative to the
// working directory the command runs in).
func WithPrepareScript(name string) Option {
	return func(r *Runner) { r.script = name }
}

func New(procs ports.ProcessRunner, opts ...Option) *Runner {
	r := &Runner{
		procs:  procs,
		script: domain.PrepareScriptName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ShellRunner = (*Runner)(nil)

func (r *Runner) RunSourced(ctx context.Context, dir string, command string) error {
	line := fmt.Sprintf("source %s && %s", r.script, command)
	return r.procs.Run(ctx, dir, "bash", "-c", line)
}
