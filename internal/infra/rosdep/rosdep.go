package rosdep

import (
	"context"
	"fmt"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Tool runs rosdep through the sourced workspace shell. Both commands run
// with the workspace root as working directory, so --from-paths stays a
// relative path exactly as rosdep expects.
type Tool struct {
	shell  ports.ShellRunner
	root   string
	srcDir string
}

type Option func(*Tool)

func WithSrcDir(dir string) Option {
	return func(t *Tool) { t.srcDir = dir }
}

func New(shell ports.ShellRunner, root string, opts ...Option) *Tool {
	t := &Tool{
		shell:  shell,
		root:   root,
		srcDir: domain.SrcDirName,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ports.DependencyResolver = (*Tool)(nil)

func (t *Tool) Update(ctx context.Context) error {
	return t.shell.RunSourced(ctx, t.root, "rosdep update")
}

func (t *Tool) InstallFromSources(ctx context.Context) error {
	cmd := fmt.Sprintf("rosdep install --from-paths %s --ignore-src -r -y", t.srcDir)
	return t.shell.RunSourced(ctx, t.root, cmd)
}
