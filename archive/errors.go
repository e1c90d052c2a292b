package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Candidate errors
	ErrBadDatePrefix = errors.New("directory name does not start with a valid YYYYMMDD date")

	// File and directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Tarball errors
	ErrNotTarGzExtension = errors.New("file path extension is not '.tar.gz'")
)
