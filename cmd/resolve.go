package cmd

import (
	"fmt"

	"provision-manager/feature/reconcile"

	"github.com/spf13/cobra"
)

// resolveCmd looks up one person by any identifier and prints their
// consolidated IT profile.
var resolveCmd = &cobra.Command{
	Use:   "resolve <identifier>",
	Short: "Resolve a person and print their complete IT profile",
	Long: `Resolves an email, user ID, username, or full name against the
provisioning matrix and prints the consolidated profile: software access,
assigned hardware, compliance issues, and score.

Examples:
  provision-manager resolve jane.doe@example.com
  provision-manager resolve U002
  provision-manager resolve "Jane Doe"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		profile := reconcile.GetCompleteITProfile(snap, args[0])
		if profile == nil {
			return fmt.Errorf("no employee matches %q", args[0])
		}
		return printJSON(profile)
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}
