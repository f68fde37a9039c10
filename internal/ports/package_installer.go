package ports

import "context"

// PackageInstaller installs system packages through the host package manager.
type PackageInstaller interface {
	// Update refreshes the package manager's index.
	Update(ctx context.Context) error
	// Install installs all given packages in a single invocation.
	Install(ctx context.Context, pkgs []string) error
}
