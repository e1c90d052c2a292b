package archive

import (
	"fmt"
	"path/filepath"
	"time"
)

// DatePrefixLen is the number of leading characters of a candidate
// directory name that encode its snapshot date (YYYYMMDD).
const DatePrefixLen = 8

const datePrefixLayout = "20060102"

// Candidate is a snapshot directory eligible for sweeping, discovered one
// level below the working root. The embedded date comes from the first
// eight characters of the directory name.
type Candidate struct {
	Name string
	Path string
	Date time.Time
}

// ParseCandidate extracts a Candidate from a directory name under root.
// Names shorter than the date prefix are not candidates and are reported
// with ok=false and no error; they skip silently. An eight-character
// prefix that is not a valid calendar date returns an error wrapping
// ErrBadDatePrefix so the caller can warn and move on.
func ParseCandidate(root, name string) (c Candidate, ok bool, err error) {
	if len(name) < DatePrefixLen {
		return Candidate{}, false, nil
	}
	date, err := time.ParseInLocation(datePrefixLayout, name[:DatePrefixLen], time.UTC)
	if err != nil {
		return Candidate{}, false, fmt.Errorf("%w: %q", ErrBadDatePrefix, name[:DatePrefixLen])
	}
	return Candidate{
		Name: name,
		Path: filepath.Join(root, name),
		Date: date,
	}, true, nil
}

// AgeDays returns the candidate's age in whole days at the given time.
// Both the embedded date (UTC midnight) and now are compared as epoch
// seconds, truncating toward zero.
func (c Candidate) AgeDays(now time.Time) int {
	return int((now.Unix() - c.Date.Unix()) / 86400)
}

// TargetPath returns the path the candidate's tarball is written to,
// alongside the candidate itself.
func (c Candidate) TargetPath() string {
	return c.Path + ".tar.gz"
}
