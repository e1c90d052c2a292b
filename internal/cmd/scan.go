package cmd

import (
	"fmt"
	"log"

	"github.com/snapsweep/snapsweep/archive"
	"github.com/spf13/cobra"
)

// NewScanCmd creates and returns the scan subcommand for the snapsweep CLI.
// It lists discovered directories and what a sweep would do with each.
func NewScanCmd() *cobra.Command {
	var (
		root    string
		ageDays int
	)

	cmd := &cobra.Command{
		Use:   "scan [ROOT]",
		Short: "Show what a sweep would do without changing anything",
		Long: `Scan the working root and print one line per discovered directory with
its age in whole days and the action a sweep would take: archive, fresh
(not old enough), exists (tarball already present), or skip (no usable
date prefix). Nothing is modified.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				root = args[0]
			}
			runScan(root, ageDays)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", archive.DefaultRoot, "Working root containing snapshot directories")
	cmd.Flags().IntVarP(&ageDays, "age", "a", archive.DefaultMaxAgeDays, "Age threshold in whole days")

	return cmd
}

func runScan(root string, ageDays int) {
	a := archive.NewArchiver(archive.Config{Root: root, MaxAgeDays: ageDays})
	plans, err := a.Scan()
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	if len(plans) == 0 {
		fmt.Println("No snapshot directories found")
		return
	}

	toArchive := 0
	for _, p := range plans {
		switch p.Status {
		case archive.StatusSkipName:
			if p.Err != nil {
				fmt.Printf("  %-30s %-8s (%v)\n", p.Name, p.Status, p.Err)
			} else {
				fmt.Printf("  %-30s %-8s\n", p.Name, p.Status)
			}
		case archive.StatusArchive:
			toArchive++
			fmt.Printf("  %-30s %-8s age %dd -> %s\n", p.Name, p.Status, p.AgeDays, p.Target)
		default:
			fmt.Printf("  %-30s %-8s age %dd\n", p.Name, p.Status, p.AgeDays)
		}
	}
	fmt.Printf("\n%d of %d directories would be archived\n", toArchive, len(plans))
}
