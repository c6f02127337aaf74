package cmd

import (
	"time"

	"provision-manager/core/dataset"
	"provision-manager/feature/devices"
	"provision-manager/feature/directory"
	"provision-manager/feature/portfolio"

	"github.com/spf13/cobra"
)

var warrantyDays int

// reportCmd is the parent command for aggregate reports.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print aggregate reports from the CSV exports",
	Long: `Reports summarize one dataset at a time: SaaS spend by service,
user, and department; device fleet composition and lifecycle; and the
provisioning compliance dashboard.

Examples:
  provision-manager report spend
  provision-manager report devices
  provision-manager report warranty --days 30
  provision-manager report compliance`,
}

var reportSpendCmd = &cobra.Command{
	Use:   "spend",
	Short: "SaaS spend broken down by service, user, and department",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.GetSpendReport(snap)
		})
	},
}

var reportOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Portfolio utilization per service with category rollups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.GetPortfolioOverview(snap)
		})
	},
}

var reportDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Device fleet counts by status, type, and manufacturer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return devices.GetDeviceSummary(snap)
		})
	},
}

var reportLifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Fleet age, procurement history, and refresh recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return devices.GetLifecycleStats(snap, time.Now())
		})
	},
}

var reportWarrantyCmd = &cobra.Command{
	Use:   "warranty",
	Short: "Devices whose warranty expires within the threshold",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return devices.GetWarrantyExpiringDevices(snap, warrantyDays, time.Now())
		})
	},
}

var reportComplianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Provisioning compliance dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return directory.GetComplianceDashboard(snap)
		})
	},
}

var reportLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Employee headcount and service usage per work location",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return directory.GetLocationStats(snap, "")
		})
	},
}

func init() {
	reportWarrantyCmd.Flags().IntVar(&warrantyDays, "days", 90, "Expiry threshold in days")

	reportCmd.AddCommand(reportSpendCmd)
	reportCmd.AddCommand(reportOverviewCmd)
	reportCmd.AddCommand(reportDevicesCmd)
	reportCmd.AddCommand(reportLifecycleCmd)
	reportCmd.AddCommand(reportWarrantyCmd)
	reportCmd.AddCommand(reportComplianceCmd)
	reportCmd.AddCommand(reportLocationsCmd)
	RootCmd.AddCommand(reportCmd)
}
