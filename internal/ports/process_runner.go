package ports

import "context"

// ProcessRunner executes a single external command to completion.
// dir sets the working directory; an empty dir inherits the caller's.
type ProcessRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}
