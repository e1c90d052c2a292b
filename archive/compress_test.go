package archive

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestTarGz_Compress(t *testing.T) {
	// Create a snapshot-shaped source directory
	dir := t.TempDir()
	src := filepath.Join(dir, "20200101_foo")
	os.MkdirAll(filepath.Join(src, "by_vin"), 0755)
	os.WriteFile(filepath.Join(src, "paginated_scan.txt"), []byte("scan content"), 0644)
	os.WriteFile(filepath.Join(src, "by_vin", "lookup.txt"), []byte("lookup content"), 0644)

	dest := filepath.Join(dir, "20200101_foo.tar.gz")
	err := TarGz{}.Compress(src, dest)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// Verify entries are rooted at the source base name
	for _, name := range []string{
		"20200101_foo/paginated_scan.txt",
		"20200101_foo/by_vin/lookup.txt",
	} {
		found, err := TarballContains(dest, name)
		if err != nil {
			t.Fatalf("TarballContains failed: %v", err)
		}
		if !found {
			t.Errorf("Expected entry %q not found in tarball", name)
		}
	}

	count, err := InspectTarball(dest)
	if err != nil {
		t.Fatalf("InspectTarball failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 file entries, got %d", count)
	}
}

func TestTarGz_Compress_PreservesContent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "20200101_bar")
	os.MkdirAll(src, 0755)
	want := "line one\nline two\n"
	os.WriteFile(filepath.Join(src, "data.txt"), []byte(want), 0644)

	dest := filepath.Join(dir, "20200101_bar.tar.gz")
	if err := (TarGz{}).Compress(src, dest); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	f, err := os.Open(dest)
	if err != nil {
		t.Fatalf("Failed to open tarball: %v", err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("Failed to open gzip stream: %v", err)
	}
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			t.Fatal("data.txt not found in tarball")
		}
		if err != nil {
			t.Fatalf("Failed reading tarball: %v", err)
		}
		if hdr.Name == "20200101_bar/data.txt" {
			got, err := io.ReadAll(tr)
			if err != nil {
				t.Fatalf("Failed reading entry: %v", err)
			}
			if string(got) != want {
				t.Errorf("Entry content = %q, want %q", got, want)
			}
			return
		}
	}
}

func TestTarGz_Compress_FileNotDir(t *testing.T) {
	// Create a file instead of directory
	tmpFile := filepath.Join(t.TempDir(), "notadir.txt")
	os.WriteFile(tmpFile, []byte("content"), 0644)

	dest := filepath.Join(t.TempDir(), "out.tar.gz")
	err := TarGz{}.Compress(tmpFile, dest)
	if err != ErrExpectedDirectory {
		t.Errorf("Expected ErrExpectedDirectory, got: %v", err)
	}
}

func TestTarGz_Compress_MissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.tar.gz")
	err := TarGz{}.Compress(filepath.Join(t.TempDir(), "vanished"), dest)
	if err == nil {
		t.Error("Compress should fail for a missing source directory")
	}
}

func TestTarGz_OnFileHook(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "20200101_baz")
	os.MkdirAll(src, 0755)
	os.WriteFile(filepath.Join(src, "a.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(src, "b.txt"), []byte("b"), 0644)

	var listed []string
	c := TarGz{OnFile: func(name string) {
		listed = append(listed, name)
	}}
	if err := c.Compress(src, filepath.Join(dir, "20200101_baz.tar.gz")); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	sort.Strings(listed)
	want := []string{"20200101_baz/a.txt", "20200101_baz/b.txt"}
	if len(listed) != len(want) {
		t.Fatalf("OnFile called %d times, want %d", len(listed), len(want))
	}
	for i := range want {
		if listed[i] != want[i] {
			t.Errorf("Listed[%d] = %q, want %q", i, listed[i], want[i])
		}
	}
}

func TestInspectTarball_ExtensionCheck(t *testing.T) {
	_, err := InspectTarball("archive.zip")
	if err != ErrNotTarGzExtension {
		t.Errorf("Expected ErrNotTarGzExtension for wrong extension, got: %v", err)
	}

	_, err = TarballContains("archive.tgz", "x")
	if err != ErrNotTarGzExtension {
		t.Errorf("Expected ErrNotTarGzExtension for wrong extension, got: %v", err)
	}
}

func TestInspectTarball_Corrupt(t *testing.T) {
	// Not a gzip stream at all
	path := filepath.Join(t.TempDir(), "broken.tar.gz")
	os.WriteFile(path, []byte("this is not a tarball"), 0644)

	_, err := InspectTarball(path)
	if err == nil {
		t.Error("InspectTarball should fail for a corrupt file")
	}
}

func TestInspectTarball_Truncated(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "20200101_qux")
	os.MkdirAll(src, 0755)
	os.WriteFile(filepath.Join(src, "data.txt"), []byte("some content to truncate"), 0644)

	dest := filepath.Join(dir, "20200101_qux.tar.gz")
	if err := (TarGz{}).Compress(src, dest); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// Chop the tail off the tarball
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read tarball: %v", err)
	}
	os.WriteFile(dest, data[:len(data)/2], 0644)

	if _, err := InspectTarball(dest); err == nil {
		t.Error("InspectTarball should fail for a truncated tarball")
	}
}
