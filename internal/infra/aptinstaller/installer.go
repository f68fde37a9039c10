package aptinstaller

import (
	"context"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Installer drives the host package manager: `sudo apt update` followed by a
// single `sudo apt install -y <pkgs...>`. apt runs outside prepare.sh's
// environment, matching how system packages are installed by hand.
type Installer struct {
	procs  ports.ProcessRunner
	aptBin string
	sudo   bool
}

type Option func(*Installer)

// WithAptBin overrides the apt binary name.
func WithAptBin(bin string) Option {
	return func(i *Installer) { i.aptBin = bin }
}

// WithSudo toggles the sudo prefix (tests, containers running as root).
func WithSudo(enabled bool) Option {
	return func(i *Installer) { i.sudo = enabled }
}

func New(procs ports.ProcessRunner, opts ...Option) *Installer {
	i := &Installer{
		procs:  procs,
		aptBin: "apt",
		sudo:   true,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

var _ ports.PackageInstaller = (*Installer)(nil)

func (i *Installer) Update(ctx context.Context) error {
	name, args := i.command("update")
	return i.procs.Run(ctx, "", name, args...)
}

func (i *Installer) Install(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	name, args := i.command(append([]string{"install", "-y"}, pkgs...)...)
	return i.procs.Run(ctx, "", name, args...)
}

func (i *Installer) command(aptArgs ...string) (string, []string) {
	if i.sudo {
		return "sudo", append([]string{i.aptBin}, aptArgs...)
	}
	return i.aptBin, aptArgs
}
