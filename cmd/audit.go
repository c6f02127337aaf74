package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"provision-manager/core/config"
	"provision-manager/core/dataset"
	"provision-manager/core/logger"
	"provision-manager/feature/devices"
	"provision-manager/feature/directory"
	"provision-manager/feature/portfolio"
	"provision-manager/feature/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd is the parent command for all audit operations.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run cross-dataset audits over the CSV exports",
	Long: `Audits join the provisioning matrix, device inventory, and app
portfolio to surface discrepancies: stale access, orphaned hardware,
privilege sprawl, and wasted spend.

Examples:
  # Provisioning-vs-portfolio sync audit
  provision-manager audit sync

  # Devices held by deleted or unknown users
  provision-manager audit devices

  # Admin access concentration and contractor exposure
  provision-manager audit privileged-access`,
}

var auditSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile provisioning statuses against portfolio accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return reconcile.ReconcileProvisionVsPortfolio(snap)
		})
	},
}

var auditDevicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Check device assignments against the employee roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return reconcile.AuditDeviceAssignmentMismatch(snap, time.Now())
		})
	},
}

var auditInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Flag inventory hygiene issues in the device export",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return devices.AuditDeviceAssignments(snap)
		})
	},
}

var auditCostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Find wasted SaaS spend (inactive, duplicate, deleted accounts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.AuditCostOptimization(snap)
		})
	},
}

var auditPrivilegedCmd = &cobra.Command{
	Use:   "privileged-access",
	Short: "Profile admin-role concentration and contractor exposure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.AuditPrivilegedAccess(snap)
		})
	},
}

var auditMultiAccountCmd = &cobra.Command{
	Use:   "multi-account",
	Short: "Detect users holding several accounts in one service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.AuditMultiAccountAnomalies(snap)
		})
	},
}

var auditContractorsCmd = &cobra.Command{
	Use:   "contractors",
	Short: "Summarize contractor access and cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return portfolio.GetContractorAudit(snap)
		})
	},
}

var auditDeletedUsersCmd = &cobra.Command{
	Use:   "deleted-users",
	Short: "List deleted employees whose service access is still live",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(func(snap *dataset.Snapshot) any {
			return directory.AuditDeletedUsers(snap)
		})
	},
}

func init() {
	auditCmd.AddCommand(auditSyncCmd)
	auditCmd.AddCommand(auditDevicesCmd)
	auditCmd.AddCommand(auditInventoryCmd)
	auditCmd.AddCommand(auditCostCmd)
	auditCmd.AddCommand(auditPrivilegedCmd)
	auditCmd.AddCommand(auditMultiAccountCmd)
	auditCmd.AddCommand(auditContractorsCmd)
	auditCmd.AddCommand(auditDeletedUsersCmd)
	RootCmd.AddCommand(auditCmd)
}

// runAudit loads the exports once and prints the audit result as indented
// JSON on stdout. Log output goes to stderr via zap so the JSON stays pipeable.
func runAudit(fn func(*dataset.Snapshot) any) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}
	return printJSON(fn(snap))
}

func loadSnapshot() (*dataset.Snapshot, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	snap, err := dataset.NewSource(cfg.Data).Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load CSV exports: %w", err)
	}
	l.Info("Datasets loaded",
		zap.Int("employees", len(snap.Employees)),
		zap.Int("devices", len(snap.Devices)),
		zap.Int("portfolio_accounts", len(snap.Portfolio)),
	)
	return snap, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
