package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/snapsweep/snapsweep/archive"
	"github.com/spf13/cobra"
)

// NewRunCmd creates and returns the run subcommand for the snapsweep CLI.
// It performs the sweep: archiving and removing aged snapshot directories.
func NewRunCmd() *cobra.Command {
	var (
		root    string
		ageDays int
		verbose bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep the working root, archiving and removing aged directories",
		Long: `Sweep the working root for snapshot directories older than the age
threshold, compress each into <name>.tar.gz alongside it, and remove the
original after the tarball has been written successfully.

With no flags the sweep uses root "archive" and a three whole-day
threshold. A directory whose tarball already exists is reported and left
exactly as found.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSweep(root, ageDays, verbose, dryRun)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", archive.DefaultRoot, "Working root containing snapshot directories")
	cmd.Flags().IntVarP(&ageDays, "age", "a", archive.DefaultMaxAgeDays, "Age threshold in whole days; directories must exceed it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List files as they are archived")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")

	return cmd
}

func runSweep(root string, ageDays int, verbose, dryRun bool) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Fatalf("Working root does not exist: %s", root)
	}

	a := archive.NewArchiver(archive.Config{
		Root:       root,
		MaxAgeDays: ageDays,
		DryRun:     dryRun,
	})
	if verbose {
		a.SetCompressor(archive.TarGz{OnFile: func(name string) {
			fmt.Println(name)
		}})
	}

	res, err := a.Run()
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	if verbose || dryRun {
		fmt.Printf("Sweep complete:\n")
		fmt.Printf("  Archived: %d\n", res.Archived)
		fmt.Printf("  Existing tarballs skipped: %d\n", res.SkippedExisting)
		fmt.Printf("  Not old enough: %d\n", res.SkippedFresh)
		fmt.Printf("  Unusable names: %d\n", res.SkippedName)
		fmt.Printf("  Failed: %d\n", res.Failed)
	}

	if res.Failed > 0 {
		os.Exit(1)
	}
}
