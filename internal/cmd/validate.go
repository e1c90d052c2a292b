package cmd

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/snapsweep/snapsweep/archive"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the snapsweep CLI.
// It provides tarball integrity checking for swept archives.
func NewValidateCmd() *cobra.Command {
	var (
		root    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check existing tarballs for corruption",
		Long: `Validate the tarballs under the working root.

Every .tar.gz file is opened and read entry by entry to the end, so
truncated or corrupted archives are reported. The command exits nonzero
if any tarball fails validation.`,
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(root, verbose)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", archive.DefaultRoot, "Working root containing tarballs to validate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runValidate(root string, verbose bool) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Fatalf("Working root does not exist: %s", root)
	}

	if verbose {
		fmt.Printf("Validating tarballs under %s\n", root)
	}

	var totalErrors int
	var totalTarballs int

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tar.gz") {
			return nil
		}

		totalTarballs++
		count, inspectErr := archive.InspectTarball(path)
		if inspectErr != nil {
			fmt.Printf("Tarball %s is invalid: %v\n", path, inspectErr)
			totalErrors++
			return nil
		}
		if verbose {
			fmt.Printf("Tarball %s is valid (%d files)\n", path, count)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error walking working root: %v", err)
	}

	fmt.Printf("\nValidation complete:\n")
	fmt.Printf("  Tarballs checked: %d\n", totalTarballs)
	fmt.Printf("  Invalid: %d\n", totalErrors)

	if totalErrors > 0 {
		os.Exit(1)
	}
}
