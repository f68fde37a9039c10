package shellenv

import (
	"os"
	"sort"

	"github.com/joho/godotenv"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// Checker verifies prepare.sh and probes the optional .env file. It never
// reads prepare.sh's content; the script stays externally owned.
type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

var _ ports.EnvironmentChecker = (*Checker)(nil)

func (c *Checker) Check(ws domain.Workspace) (domain.EnvironmentStatus, error) {
	var status domain.EnvironmentStatus

	script := ws.PrepareScript()
	info, err := os.Stat(script)
	if err != nil {
		return status, &domain.OpError{
			Op:   "shellenv.check",
			Kind: domain.KindNotFound,
			Path: script,
			Err:  err,
		}
	}

	if info.Mode().Perm()&0o111 == 0 {
		if err := os.Chmod(script, 0o755); err != nil {
			return status, &domain.OpError{
				Op:   "shellenv.chmod",
				Kind: domain.KindExecution,
				Path: script,
				Err:  err,
			}
		}
		status.PrepareScriptFixed = true
	}

	envFile := ws.EnvFile()
	if _, err := os.Stat(envFile); err != nil {
		return status, nil
	}
	status.EnvFilePresent = true

	// Diagnostics only; a broken .env is prepare.sh's problem, not ours.
	vars, err := godotenv.Read(envFile)
	if err != nil {
		return status, nil
	}
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	status.EnvVars = names

	return status, nil
}
