package domain

import "testing"

func TestSetupReportFailed_OnlyBuildCounts(t *testing.T) {
	r := SetupReport{
		Steps: []StepResult{
			{Step: StepAptUpdate, Status: StatusOK},
			{Step: StepAptInstall, Status: StatusFailed, Message: "apt exited with code 100"},
			{Step: StepRosdepUpdate, Status: StatusFailed},
			{Step: StepRosdepInstall, Status: StatusOK},
			{Step: StepBuild, Status: StatusOK},
		},
	}

	if r.Failed() {
		t.Fatalf("expected run to pass when only recoverable steps failed")
	}
	if got := r.Warnings(); got != 2 {
		t.Fatalf("expected 2 warnings, got=%d", got)
	}

	r.Steps[len(r.Steps)-1].Status = StatusFailed
	if !r.Failed() {
		t.Fatalf("expected run to fail when build step failed")
	}
}

func TestSetupReportFailed_NoBuildStep(t *testing.T) {
	r := SetupReport{
		Steps: []StepResult{
			{Step: StepAptUpdate, Status: StatusOK},
		},
	}
	if r.Failed() {
		t.Fatalf("expected Failed=false when build never ran")
	}
}

func TestSetupReportStatus(t *testing.T) {
	r := SetupReport{
		Steps: []StepResult{
			{Step: StepAptInstall, Status: StatusSkipped},
		},
	}

	st, ok := r.Status(StepAptInstall)
	if !ok || st != StatusSkipped {
		t.Fatalf("expected skipped apt_install, got=%v ok=%v", st, ok)
	}
	if _, ok := r.Status(StepBuild); ok {
		t.Fatalf("expected no build status")
	}
}

func TestPackageSetEmpty(t *testing.T) {
	if !(PackageSet{}).Empty() {
		t.Fatalf("expected empty set")
	}
	if (PackageSet{Official: []string{"ros-humble-demo"}}).Empty() {
		t.Fatalf("expected non-empty set")
	}
}
