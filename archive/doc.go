// Package archive implements the snapshot directory sweep.
//
// The package discovers candidate directories one level below a working
// root, reads the date embedded in the first eight characters of each
// directory name (YYYYMMDD), and compresses every directory older than a
// configured threshold into a gzip-compressed tarball placed alongside it.
// A candidate is removed only after its tarball has been written
// successfully, and a candidate whose tarball already exists is never
// touched, which makes repeated runs over the same tree safe.
//
// Key Components:
//
// Candidate Discovery:
//   - Depth-1 scan of the working root (non-recursive)
//   - Date extraction from the directory name prefix
//   - Whole-day age computation against the run's notion of "now"
//
// Compression:
//   - Compressor capability interface for producing archives
//   - Native tar.gz implementation with per-file listing hook
//   - Tarball inspection helpers for validation
//
// Sweep Execution:
//   - Archiver.Run processes candidates strictly sequentially
//   - Failures are local to a single candidate and never abort the run
//   - Run returns counters describing what was archived and skipped
//
// The working root doubles as the tarball destination: archives accumulate
// next to directories that have not aged out yet. The scan only considers
// directories, so accumulated tarballs can never become candidates.
package archive
