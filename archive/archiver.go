package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"
)

// Defaults for Config fields left at their zero value: the working root
// named "archive" and a three whole-day age threshold, matching the layout
// the snapshot producer writes.
const (
	DefaultRoot       = "archive"
	DefaultMaxAgeDays = 3
)

// Config carries the knobs of a sweep. The zero value is usable; empty
// fields fall back to the defaults above.
type Config struct {
	// Root is the directory scanned for candidates and written with
	// tarballs. Source and destination deliberately share this root.
	Root string
	// MaxAgeDays is the age in whole days a candidate must exceed before
	// it is archived. Candidates aged MaxAgeDays or less are left alone.
	MaxAgeDays int
	// Now supplies the sweep's notion of the current time. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
	// DryRun reports what would be archived without touching anything.
	DryRun bool
}

// Status classifies what a sweep will do with a discovered directory.
type Status int

const (
	// StatusArchive means the candidate is older than the threshold and
	// has no tarball yet; it will be compressed and removed.
	StatusArchive Status = iota
	// StatusFresh means the candidate has not aged past the threshold.
	StatusFresh
	// StatusExists means a tarball already exists at the target path;
	// the candidate is left exactly as found.
	StatusExists
	// StatusSkipName means the directory name does not carry a usable
	// date prefix and the directory is not a candidate at all.
	StatusSkipName
)

// String returns a short operator-facing label for the status.
func (s Status) String() string {
	switch s {
	case StatusArchive:
		return "archive"
	case StatusFresh:
		return "fresh"
	case StatusExists:
		return "exists"
	case StatusSkipName:
		return "skip"
	default:
		return "unknown"
	}
}

// Plan is one entry of a sweep plan: a directory found under the root and
// the action the sweep will take for it.
type Plan struct {
	Name    string
	Path    string
	Target  string
	AgeDays int
	Status  Status
	// Err is set when Status is StatusSkipName because the date prefix
	// was present but unparseable. Short names skip with a nil Err.
	Err error
}

// Result summarizes a completed run.
type Result struct {
	Archived        int
	SkippedExisting int
	SkippedFresh    int
	SkippedName     int
	Failed          int
}

// Archiver performs the sweep described by its Config. Construct with
// NewArchiver so defaults are applied.
type Archiver struct {
	cfg  Config
	comp Compressor
	out  io.Writer
}

// NewArchiver returns an Archiver for the given config, filling empty
// fields with the original sweep's defaults and a native tar.gz
// compressor.
func NewArchiver(cfg Config) *Archiver {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = DefaultMaxAgeDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Archiver{
		cfg:  cfg,
		comp: TarGz{},
		out:  os.Stdout,
	}
}

// SetCompressor replaces the compressor used for archiving. The contract
// is unchanged: a nil error means the tarball at the target path is
// complete and the source directory may be removed.
func (a *Archiver) SetCompressor(c Compressor) {
	a.comp = c
}

// SetOutput redirects the operator-facing notices, which go to stdout by
// default.
func (a *Archiver) SetOutput(w io.Writer) {
	a.out = w
}

// Scan enumerates the immediate subdirectories of the root and classifies
// each without mutating anything. Files at the root level, including
// previously written tarballs, are never considered.
func (a *Archiver) Scan() ([]Plan, error) {
	entries, err := os.ReadDir(a.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("reading root %s: %w", a.cfg.Root, err)
	}
	now := a.cfg.Now()
	var plans []Plan
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		cand, ok, err := ParseCandidate(a.cfg.Root, e.Name())
		if !ok {
			plans = append(plans, Plan{Name: e.Name(), Status: StatusSkipName, Err: err})
			continue
		}
		p := Plan{
			Name:    cand.Name,
			Path:    cand.Path,
			Target:  cand.TargetPath(),
			AgeDays: cand.AgeDays(now),
		}
		switch {
		case p.AgeDays <= a.cfg.MaxAgeDays:
			p.Status = StatusFresh
		default:
			if _, statErr := os.Stat(p.Target); statErr == nil {
				p.Status = StatusExists
			} else if errors.Is(statErr, fs.ErrNotExist) {
				p.Status = StatusArchive
			} else {
				// target unstatable; treat as unusable name so the
				// candidate is reported and left untouched
				p.Status = StatusSkipName
				p.Err = statErr
			}
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Run executes the sweep: every candidate older than the threshold and
// without an existing tarball is compressed to <root>/<name>.tar.gz and
// then removed. Failures are local to a single candidate; the run always
// continues with the next one. The returned error is reserved for
// process-fatal conditions such as an unreadable root.
func (a *Archiver) Run() (Result, error) {
	plans, err := a.Scan()
	if err != nil {
		return Result{}, err
	}
	var res Result
	for _, p := range plans {
		switch p.Status {
		case StatusSkipName:
			if p.Err != nil {
				log.Printf("skipping %s: %v", p.Name, p.Err)
			}
			res.SkippedName++
		case StatusFresh:
			res.SkippedFresh++
		case StatusExists:
			fmt.Fprintf(a.out, "Skipping existing archive: %s\n", p.Target)
			res.SkippedExisting++
		case StatusArchive:
			if a.cfg.DryRun {
				fmt.Fprintf(a.out, "Would archive %s to %s\n", p.Path, p.Target)
				res.Archived++
				continue
			}
			if err := a.comp.Compress(p.Path, p.Target); err != nil {
				// partial output at the target is left in place
				fmt.Fprintf(a.out, "Error creating archive: %s\n", p.Target)
				log.Printf("compressing %s: %v", p.Path, err)
				res.Failed++
				continue
			}
			if err := os.RemoveAll(p.Path); err != nil {
				log.Printf("removing %s after archiving: %v", p.Path, err)
				res.Failed++
				continue
			}
			fmt.Fprintf(a.out, "Archived %s to %s\n", p.Path, p.Target)
			res.Archived++
		}
	}
	return res, nil
}
