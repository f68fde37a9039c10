package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/ports"
)

// SetupWorkspace runs the full workspace setup sequence: environment guard,
// config load, system package install, dependency resolution, build.
//
// Pre-flight problems (missing prepare.sh, missing or malformed config) are
// fatal and abort before any subprocess runs. Installer and resolver failures
// are recorded and logged but do not stop the run. A build failure is the
// run's failure.
type SetupWorkspace struct {
	env      ports.EnvironmentChecker
	config   ports.ConfigLoader
	packages ports.PackageInstaller
	deps     ports.DependencyResolver
	builder  ports.WorkspaceBuilder
	store    ports.ReportStore // optional; nil disables persistence
	log      *slog.Logger
}

func NewSetupWorkspace(
	env ports.EnvironmentChecker,
	config ports.ConfigLoader,
	packages ports.PackageInstaller,
	deps ports.DependencyResolver,
	builder ports.WorkspaceBuilder,
	store ports.ReportStore,
	log *slog.Logger,
) *SetupWorkspace {
	return &SetupWorkspace{
		env:      env,
		config:   config,
		packages: packages,
		deps:     deps,
		builder:  builder,
		store:    store,
		log:      log,
	}
}

// Execute runs the pipeline over the workspace. The returned id is the saved
// report's id ("" when persistence is off or failed). A non-nil error means
// the run failed: either a fatal pre-flight error (zero-value report) or a
// build failure (report carries every step's outcome).
func (uc *SetupWorkspace) Execute(ctx context.Context, ws domain.Workspace) (domain.SetupReport, string, error) {
	uc.log.Info("setting up workspace", "root", ws.Root)

	status, err := uc.env.Check(ws)
	if err != nil {
		uc.log.Error("environment check failed", "err", err)
		return domain.SetupReport{}, "", err
	}
	uc.logEnvironment(status)

	pkgs, err := uc.config.Load(ws)
	if err != nil {
		uc.log.Error("reading config failed", "path", ws.ConfigPath(), "err", err)
		return domain.SetupReport{}, "", err
	}
	uc.log.Info("loaded official packages from config", "count", len(pkgs.Official))

	report := domain.SetupReport{
		Root:      ws.Root,
		Packages:  pkgs.Official,
		StartedAt: time.Now(),
	}

	if err := uc.installOfficialPackages(ctx, &report, pkgs); interrupted(err) {
		return uc.finish(report), "", err
	}

	if err := uc.resolveDependencies(ctx, &report); interrupted(err) {
		return uc.finish(report), "", err
	}

	buildErr := uc.runStep(ctx, &report, domain.StepBuild, func() error {
		uc.log.Info("building workspace")
		return uc.builder.Build(ctx)
	})
	if interrupted(buildErr) {
		return uc.finish(report), "", buildErr
	}

	report = uc.finish(report)

	id := uc.save(report)

	if buildErr != nil {
		uc.log.Error("failed to build workspace", "err", buildErr)
		return report, id, fmt.Errorf("build workspace: %w", buildErr)
	}

	uc.log.Info("workspace setup completed successfully")
	uc.log.Info("custom packages are managed via git submodules")
	uc.log.Info("to use the workspace, run: source prepare.sh")
	return report, id, nil
}

func (uc *SetupWorkspace) installOfficialPackages(ctx context.Context, report *domain.SetupReport, pkgs domain.PackageSet) error {
	if pkgs.Empty() {
		uc.log.Info("no official packages to install")
		appendStep(report, domain.StepAptUpdate, domain.StatusSkipped, "no official packages", 0)
		appendStep(report, domain.StepAptInstall, domain.StatusSkipped, "no official packages", 0)
		return nil
	}

	uc.log.Info("installing official packages", "count", len(pkgs.Official))

	err := uc.runStep(ctx, report, domain.StepAptUpdate, func() error {
		return uc.packages.Update(ctx)
	})
	if err != nil {
		// An outdated index makes the install outcome meaningless; skip it.
		uc.log.Error("failed to install official packages", "err", err)
		appendStep(report, domain.StepAptInstall, domain.StatusSkipped, "package index update failed", 0)
		return err
	}

	err = uc.runStep(ctx, report, domain.StepAptInstall, func() error {
		return uc.packages.Install(ctx, pkgs.Official)
	})
	if err != nil {
		uc.log.Error("failed to install official packages", "err", err)
		return err
	}

	uc.log.Info("official packages installed successfully")
	return nil
}

func (uc *SetupWorkspace) resolveDependencies(ctx context.Context, report *domain.SetupReport) error {
	uc.log.Info("installing workspace dependencies")

	updateErr := uc.runStep(ctx, report, domain.StepRosdepUpdate, func() error {
		return uc.deps.Update(ctx)
	})
	if updateErr != nil {
		uc.log.Warn("failed to sync dependency database", "err", updateErr)
		if interrupted(updateErr) {
			return updateErr
		}
	}

	installErr := uc.runStep(ctx, report, domain.StepRosdepInstall, func() error {
		return uc.deps.InstallFromSources(ctx)
	})
	if installErr != nil {
		uc.log.Warn("failed to install some dependencies", "err", installErr)
		return installErr
	}

	if updateErr == nil {
		uc.log.Info("dependencies installed successfully")
	}
	return updateErr
}

func (uc *SetupWorkspace) runStep(ctx context.Context, report *domain.SetupReport, step domain.Step, fn func() error) error {
	if err := ctx.Err(); err != nil {
		appendStep(report, step, domain.StatusSkipped, "interrupted", 0)
		return &domain.OpError{Op: "setup." + string(step), Kind: domain.KindInterrupted, Err: err}
	}

	started := time.Now()
	err := fn()
	dur := time.Since(started).Milliseconds()

	if err != nil {
		appendStep(report, step, domain.StatusFailed, err.Error(), dur)
		return err
	}
	appendStep(report, step, domain.StatusOK, "", dur)
	return nil
}

func (uc *SetupWorkspace) logEnvironment(status domain.EnvironmentStatus) {
	if status.PrepareScriptFixed {
		uc.log.Info("made prepare.sh executable")
	}
	if !status.EnvFilePresent {
		uc.log.Warn(".env file not found")
		uc.log.Info("copy .templates/example.env to .env and configure it")
		uc.log.Info("using default environment from prepare.sh")
		return
	}
	uc.log.Info("found .env file for environment configuration", "vars", len(status.EnvVars))
	uc.log.Debug(".env variables", "names", status.EnvVars)
}

func (uc *SetupWorkspace) finish(report domain.SetupReport) domain.SetupReport {
	report.EndedAt = time.Now()
	return report
}

func (uc *SetupWorkspace) save(report domain.SetupReport) string {
	if uc.store == nil {
		return ""
	}
	id, err := uc.store.SaveReport(report)
	if err != nil {
		uc.log.Warn("failed to save setup report", "err", err)
		return ""
	}
	uc.log.Debug("setup report saved", "id", id)
	return id
}

func appendStep(report *domain.SetupReport, step domain.Step, status domain.StepStatus, msg string, durMS int64) {
	report.Steps = append(report.Steps, domain.StepResult{
		Step:       step,
		Status:     status,
		Message:    msg,
		DurationMS: durMS,
	})
}

func interrupted(err error) bool {
	return err != nil && domain.IsKind(err, domain.KindInterrupted)
}
