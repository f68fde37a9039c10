package ports

import "context"

// ShellRunner executes a command line in a shell that has sourced the
// workspace environment script first. The script is re-sourced on every
// call; implementations must not cache the resulting environment.
type ShellRunner interface {
	RunSourced(ctx context.Context, dir string, command string) error
}
