package domain

import "path/filepath"

// Well-known workspace file names. prepare.sh and .env are externally owned;
// the tool only checks for them and shells through prepare.sh.
const (
	ConfigFileName    = "ros-config.yml"
	PrepareScriptName = "prepare.sh"
	EnvFileName       = ".env"
	SrcDirName        = "src"
	StateDirName      = ".rosbuild"
)

// Workspace is the root directory holding configuration, the environment
// script, and a src/ tree of source packages.
type Workspace struct {
	Root string
}

func NewWorkspace(root string) Workspace {
	return Workspace{Root: filepath.Clean(root)}
}

func (w Workspace) ConfigPath() string {
	return filepath.Join(w.Root, ConfigFileName)
}

func (w Workspace) PrepareScript() string {
	return filepath.Join(w.Root, PrepareScriptName)
}

func (w Workspace) EnvFile() string {
	return filepath.Join(w.Root, EnvFileName)
}

func (w Workspace) SrcDir() string {
	return filepath.Join(w.Root, SrcDirName)
}

func (w Workspace) StateDir() string {
	return filepath.Join(w.Root, StateDirName)
}
