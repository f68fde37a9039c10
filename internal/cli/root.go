package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/buildinfo"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/infra/logger"
)

func Execute(ctx context.Context) {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var workspace string
	var debug bool
	var format string
	var noSave bool

	cmd := &cobra.Command{
		Use:          "rosbuild",
		Short:        "rosbuild — install and build a local ROS workspace",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			ws := domain.NewWorkspace(root)
			uc := buildSetup(ws, noSave)

			report, id, err := uc.Execute(cmd.Context(), ws)
			if !report.StartedAt.IsZero() {
				if perr := printReport(os.Stdout, report, id, format); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: autodetected from the current directory)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Report format: pretty|json")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under .rosbuild/runs/")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .rosbuild/logs/rosbuild.log")
	return cmd
}
