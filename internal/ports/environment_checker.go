package ports

import "github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"

// EnvironmentChecker verifies the externally-owned environment files before
// any command runs. A missing prepare.sh is an error; everything else is
// reported through the status.
type EnvironmentChecker interface {
	Check(ws domain.Workspace) (domain.EnvironmentStatus, error)
}
