// Package cmd provides the command-line interface implementation for snapsweep.
//
// This package contains all the subcommand implementations for the snapsweep
// CLI tool. It uses the Cobra library for command structure and Fang for
// beautiful styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - run: Sweep execution (archive and remove aged snapshot directories)
//   - scan: Mutation-free preview of a sweep
//   - validate: Tarball integrity checking
//   - seed: Test snapshot directory generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command coordinates all
// subcommands; invoking "snapsweep run" with no flags sweeps the default
// root with the default threshold.
//
// The package leverages the archive package for the sweep itself.
package cmd
