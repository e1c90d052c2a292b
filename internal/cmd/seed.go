package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/snapsweep/snapsweep/archive"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the snapsweep CLI.
// It generates timestamped snapshot directories for testing the sweep.
func NewSeedCmd() *cobra.Command {
	var (
		root     string
		dirCount int
		spanDays int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate timestamped test directories",
		Long: `Generate snapshot directories for testing snapsweep functionality.

Directories are named YYYYMMDD_HHMMSS with timestamps spread over the
given day range back from now, so a subsequent sweep finds a mix of aged
and fresh candidates. Each directory holds a few files containing uuid
lines.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(root, dirCount, spanDays, verbose)
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", archive.DefaultRoot, "Working root to seed")
	cmd.Flags().IntVarP(&dirCount, "count", "c", 10, "Number of snapshot directories to generate")
	cmd.Flags().IntVarP(&spanDays, "span", "s", 10, "Spread timestamps over this many days back from now")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func seedDirName(ts time.Time) string {
	return ts.Format("20060102_150405")
}

func runSeed(root string, dirCount, spanDays int, verbose bool) {
	if spanDays < 1 {
		spanDays = 1
	}
	if verbose {
		fmt.Printf("Generating %d snapshot directories in %s\n", dirCount, root)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		log.Fatalf("Failed to create working root: %v", err)
	}

	// Pool of 50 UUIDs so file content repeats across snapshots
	uuidPool := make([]string, 50)
	for i := 0; i < 50; i++ {
		uuidPool[i] = uuid.New().String()
	}

	now := time.Now()
	created := 0

	for created < dirCount {
		dayOffset, _ := rand.Int(rand.Reader, big.NewInt(int64(spanDays)))
		hourOffset, _ := rand.Int(rand.Reader, big.NewInt(24))
		minuteOffset, _ := rand.Int(rand.Reader, big.NewInt(60))
		secondOffset, _ := rand.Int(rand.Reader, big.NewInt(60))

		ts := now.AddDate(0, 0, -int(dayOffset.Int64())).
			Add(-time.Duration(hourOffset.Int64()) * time.Hour).
			Add(-time.Duration(minuteOffset.Int64()) * time.Minute).
			Add(-time.Duration(secondOffset.Int64()) * time.Second)

		dirPath := filepath.Join(root, seedDirName(ts))

		// Skip if directory already exists
		if _, err := os.Stat(dirPath); err == nil {
			continue
		}

		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		// A few files per snapshot, each a handful of uuid lines
		fileCountBig, _ := rand.Int(rand.Reader, big.NewInt(4))
		fileCount := int(fileCountBig.Int64()) + 2
		for i := 0; i < fileCount; i++ {
			lineCountBig, _ := rand.Int(rand.Reader, big.NewInt(20))
			content := ""
			for j := int64(0); j <= lineCountBig.Int64(); j++ {
				idx, _ := rand.Int(rand.Reader, big.NewInt(50))
				content += uuidPool[idx.Int64()] + "\n"
			}
			filePath := filepath.Join(dirPath, fmt.Sprintf("scan_%02d.txt", i))
			if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
				log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			}
		}

		created++
		if verbose {
			fmt.Printf("Created %s (%d files)\n", dirPath, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d snapshot directories\n", created)
	}
}
