package domain

// PackageSet is the configuration loaded from ros-config.yml: the system
// packages to install through the host package manager. Packages tracked as
// git submodules are out of scope and never appear here.
type PackageSet struct {
	Official []string
}

// Empty reports whether there is nothing for the installer to do.
func (p PackageSet) Empty() bool {
	return len(p.Official) == 0
}
