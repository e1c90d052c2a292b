package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Compressor produces a compressed archive of a source directory at a
// destination path. A nil error means the archive at dest is complete; on
// error the destination may hold a partial file, which is left for the
// caller to deal with.
type Compressor interface {
	Compress(src, dest string) error
}

// TarGz is the native Compressor implementation, writing gzip-compressed
// tarballs. Entries are rooted at the source directory's base name, so a
// tarball of archive/20200101_foo contains 20200101_foo/... paths.
type TarGz struct {
	// OnFile, when set, is called with each entry name as it is written.
	// It stands in for the verbose listing of the original sweep.
	OnFile func(name string)
}

// Compress writes a tarball of the directory at src to dest.
func (t TarGz) Compress(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return ErrExpectedDirectory
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	zw := gzip.NewWriter(file)
	defer zw.Close()
	tw := tar.NewWriter(zw)
	defer tw.Close()

	base := filepath.Base(src)
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		fi, statErr := d.Info()
		if statErr != nil {
			return statErr
		}
		// only regular files and directories go into the tarball
		if !fi.Mode().IsRegular() && !fi.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		name := base
		if rel != "." {
			name = filepath.ToSlash(filepath.Join(base, rel))
		}
		hdr, hdrErr := tar.FileInfoHeader(fi, "")
		if hdrErr != nil {
			return hdrErr
		}
		hdr.Name = name
		if fi.IsDir() {
			hdr.Name += "/"
		}
		if writeErr := tw.WriteHeader(hdr); writeErr != nil {
			return writeErr
		}
		if fi.IsDir() {
			return nil
		}
		f, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		_, copyErr := io.Copy(tw, f)
		f.Close()
		if copyErr != nil {
			return copyErr
		}
		if t.OnFile != nil {
			t.OnFile(name)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// flush tar then gzip so close errors surface as compression failures
	if err := tw.Close(); err != nil {
		return err
	}
	return zw.Close()
}

// InspectTarball opens the tarball at path and returns the number of file
// entries it holds, reading every entry to the end so corruption anywhere
// in the stream is reported.
func InspectTarball(path string) (int, error) {
	if !strings.HasSuffix(path, ".tar.gz") {
		return 0, ErrNotTarGzExtension
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return 0, err
	}
	defer zr.Close()
	tr := tar.NewReader(zr)
	count := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if hdr.Typeflag == tar.TypeDir {
			continue
		}
		if _, err := io.Copy(io.Discard, tr); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// TarballContains reports whether the tarball at path holds an entry with
// the given name.
func TarballContains(path, name string) (bool, error) {
	if !strings.HasSuffix(path, ".tar.gz") {
		return false, ErrNotTarGzExtension
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return false, err
	}
	defer zr.Close()
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if hdr.Name == name {
			return true, nil
		}
	}
}
