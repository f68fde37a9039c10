package ports

import "context"

// WorkspaceBuilder compiles the packages under src/ into the workspace overlay.
type WorkspaceBuilder interface {
	Build(ctx context.Context) error
}
