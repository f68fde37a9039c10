package domain

import "time"

// Step identifies one stage of the setup pipeline.
type Step string

const (
	StepAptUpdate     Step = "apt_update"
	StepAptInstall    Step = "apt_install"
	StepRosdepUpdate  Step = "rosdep_update"
	StepRosdepInstall Step = "rosdep_install"
	StepBuild         Step = "build"
)

// StepStatus is the recorded outcome of a single step.
type StepStatus string

const (
	StatusOK      StepStatus = "ok"
	StatusFailed  StepStatus = "failed"
	StatusSkipped StepStatus = "skipped"
)

// StepResult records one step's outcome. Message carries the failure or
// skip reason; it is empty for plain successes.
type StepResult struct {
	Step       Step
	Status     StepStatus
	Message    string
	DurationMS int64
}

// SetupReport represents one full setup run over a workspace.
type SetupReport struct {
	Root     string
	Packages []string

	StartedAt time.Time
	EndedAt   time.Time

	Steps []StepResult
}

// Status returns the recorded outcome for a step, if the step ran.
func (r SetupReport) Status(step Step) (StepStatus, bool) {
	for _, s := range r.Steps {
		if s.Step == step {
			return s.Status, true
		}
	}
	return "", false
}

// Failed reports whether the run as a whole failed. Installer and resolver
// failures are recoverable; only a failed build step fails the run.
func (r SetupReport) Failed() bool {
	st, ok := r.Status(StepBuild)
	return ok && st == StatusFailed
}

// Warnings counts recoverable step failures (everything but the build).
func (r SetupReport) Warnings() int {
	n := 0
	for _, s := range r.Steps {
		if s.Step != StepBuild && s.Status == StatusFailed {
			n++
		}
	}
	return n
}
