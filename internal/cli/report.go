package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"
)

var (
	okBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render("OK")
	failBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("FAIL")
	skipBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("SKIP")
)

func printReport(w io.Writer, report domain.SetupReport, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include the report id (optional) as a wrapper to avoid changing the domain model.
		payload := map[string]any{
			"report_id": id,
			"report":    report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.SetupReport, id string) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Workspace: %s\n", report.Root)
	fmt.Fprintf(w, "Packages:  %d\n", len(report.Packages))
	fmt.Fprintf(w, "Started:   %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Ended:     %s\n", report.EndedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:  %s\n", total)
	if id != "" {
		fmt.Fprintf(w, "Report ID: %s\n", id)
	}
	fmt.Fprintln(w)

	for _, s := range report.Steps {
		fmt.Fprintf(w, "- [%s] %s (%dms)", statusBadge(s.Status), s.Step, s.DurationMS)
		if s.Message != "" {
			fmt.Fprintf(w, " — %s", s.Message)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	switch {
	case report.Failed():
		fmt.Fprintf(w, "Result: %s (build failed)\n", failBadge)
	case report.Warnings() > 0:
		fmt.Fprintf(w, "Result: %s (%d step(s) reported problems)\n", okBadge, report.Warnings())
	default:
		fmt.Fprintf(w, "Result: %s\n", okBadge)
	}
}

func statusBadge(st domain.StepStatus) string {
	switch st {
	case domain.StatusOK:
		return okBadge
	case domain.StatusFailed:
		return failBadge
	case domain.StatusSkipped:
		return skipBadge
	default:
		return string(st)
	}
}
