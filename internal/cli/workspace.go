package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/aptinstaller"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/colcon"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/logger"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/procrunner"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/reportstore"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/rosdep"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/shellenv"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/shellrunner"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/workspacefinder"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/yamlconfig"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/usecase"
)

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		// Fall back to the CWD; the missing-config error surfaces with the
		// full pre-flight context instead of a bare "not found" here.
		return wd, nil
	}
	return root, nil
}

func buildSetup(ws domain.Workspace, noSave bool) *usecase.SetupWorkspace {
	procs := procrunner.New()
	shell := shellrunner.New(procs)

	var store ports.ReportStore
	if !noSave {
		store = reportstore.NewJSONStore(ws.Root, reportstore.WithIndex(true))
	}

	return usecase.NewSetupWorkspace(
		shellenv.NewChecker(),
		yamlconfig.NewLoader(),
		aptinstaller.New(procs),
		rosdep.New(shell, ws.Root),
		colcon.New(shell, ws.Root),
		store,
		logger.L(),
	)
}
