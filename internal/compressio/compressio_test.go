package compressio

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func readAll(t *testing.T, path string) []byte {
	t.Helper()
	rc, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll(%s): %v", path, err)
	}
	return got
}

func TestOpen_Plain(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "q.cnf", []byte("p cnf 1 1\n1 0\n"))
	if got := readAll(t, path); string(got) != "p cnf 1 1\n1 0\n" {
		t.Errorf("got %q", got)
	}
}

func TestOpen_Gzip(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Write([]byte("hello gzip"))
	gw.Close()
	path := writeFile(t, dir, "q.cnf.gz", buf.Bytes())
	if got := readAll(t, path); string(got) != "hello gzip" {
		t.Errorf("got %q", got)
	}
}

func TestOpen_Xz(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	xw.Write([]byte("hello xz"))
	xw.Close()
	path := writeFile(t, dir, "q.cnf.xz", buf.Bytes())
	if got := readAll(t, path); string(got) != "hello xz" {
		t.Errorf("got %q", got)
	}
}

func TestOpen_Zstd(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd.NewWriter: %v", err)
	}
	zw.Write([]byte("hello zstd"))
	zw.Close()
	path := writeFile(t, dir, "q.cnf.zst", buf.Bytes())
	if got := readAll(t, path); string(got) != "hello zstd" {
		t.Errorf("got %q", got)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.cnf")); err == nil {
		t.Errorf("Open(missing file): want error, got none")
	}
}
