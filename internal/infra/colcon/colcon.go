package colcon

import (
	"context"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Builder runs colcon through the sourced workspace shell.
type Builder struct {
	shell          ports.ShellRunner
	root           string
	symlinkInstall bool
}

type Option func(*Builder)

// WithSymlinkInstall toggles --symlink-install (on by default).
func WithSymlinkInstall(enabled bool) Option {
	return func(b *Builder) { b.symlinkInstall = enabled }
}

func New(shell ports.ShellRunner, root string, opts ...Option) *Builder {
	b := &Builder{
		shell:          shell,
		root:           root,
		symlinkInstall: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var _ ports.WorkspaceBuilder = (*Builder)(nil)

func (b *Builder) Build(ctx context.Context) error {
	cmd := "colcon build"
	if b.symlinkInstall {
		cmd += " --symlink-install"
	}
	return b.shell.RunSourced(ctx, b.root, cmd)
}
