package ports

import "github.com/DanielHou315/DiceMaster-ROS-workspace/internal/domain"

// ReportStore persists setup reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.SetupReport) (id string, err error)
}
