package ports

import "context"

// DependencyResolver syncs the external dependency database and installs
// system-level dependencies of the packages under src/.
type DependencyResolver interface {
	Update(ctx context.Context) error
	InstallFromSources(ctx context.Context) error
}
