package cmd

import (
	"github.com/snapsweep/snapsweep/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the snapsweep CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "snapsweep",
		Short: "snapsweep - archive aged snapshot directories into tarballs",
		Long: `snapsweep keeps a snapshot tree from growing without bound.

Snapshot directories are named with a leading YYYYMMDD date (for example
20240115_093000). Once a directory's embedded date is more than three whole
days old, snapsweep compresses it into <name>.tar.gz alongside it and removes
the original. Directories whose tarball already exists are never touched, so
repeated runs are safe.

Use subcommands to perform different operations:
  - run: Sweep the working root, archiving and removing aged directories
  - scan: Show what a sweep would do without changing anything
  - validate: Check existing tarballs for corruption
  - seed: Generate timestamped test directories`,
		Version: version.GetFullVersion(),
	}

	groupSweep := "sweep"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSweep,
		Title: "Sweep Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	runCmd := NewRunCmd()
	scanCmd := NewScanCmd()
	validateCmd := NewValidateCmd()
	seedCmd := NewSeedCmd()

	runCmd.GroupID = groupSweep
	scanCmd.GroupID = groupSweep
	validateCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
