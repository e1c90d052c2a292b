// Package main provides the snapsweep command-line interface.
//
// snapsweep archives aged snapshot directories into gzip-compressed
// tarballs, removing the originals after a successful archive. Snapshot
// directories carry their date in the first eight characters of their name
// (YYYYMMDD, typically YYYYMMDD_HHMMSS); once that date is more than three
// whole days in the past, the directory is compressed into <name>.tar.gz
// next to it and deleted. Existing tarballs are never overwritten, so the
// sweep is safe to rerun.
//
// Tarballs are written into the same root that is being swept, so archives
// accumulate alongside directories that have not aged out yet.
//
// The main binary supports multiple subcommands:
//   - run: Sweep the working root, archiving and removing aged directories
//   - scan: Show what a sweep would do without changing anything
//   - validate: Check existing tarballs for corruption
//   - seed: Generate timestamped test directories
package main
