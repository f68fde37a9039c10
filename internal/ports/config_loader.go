package ports

import "github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"

// ConfigLoader loads the workspace package configuration (e.g., from ros-config.yml).
type ConfigLoader interface {
	Load(ws domain.Workspace) (domain.PackageSet, error)
}
