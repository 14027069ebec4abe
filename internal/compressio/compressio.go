// Package compressio opens input files, transparently decompressing them
// based on their filename suffix.
package compressio

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// nopCloser adapts compress/bzip2's io.Reader (it has no Close method) to
// io.ReadCloser, closing the underlying file instead.
type nopCloser struct {
	io.Reader
	close func() error
}

func (n nopCloser) Close() error { return n.close() }

// zstdCloser adapts a *zstd.Decoder (whose Close returns nothing) to
// io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
	close func() error
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return z.close()
}

// Open opens path and wraps it in a decompressing reader chosen by suffix:
// ".bz2" (stdlib bzip2), ".gz" (stdlib gzip), ".xz" (ulikunitz/xz), ".zst" or
// ".zstd" (klauspost/compress/zstd). Any other suffix is read raw. The
// returned ReadCloser's Close also closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".bz2"):
		return nopCloser{Reader: bzip2.NewReader(f), close: f.Close}, nil

	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("compressio: opening gzip stream: %w", err)
		}
		return nopCloser{Reader: gz, close: func() error {
			gz.Close()
			return f.Close()
		}}, nil

	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("compressio: opening xz stream: %w", err)
		}
		return nopCloser{Reader: xr, close: f.Close}, nil

	case strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("compressio: opening zstd stream: %w", err)
		}
		return zstdCloser{Decoder: zr, close: f.Close}, nil

	default:
		return f, nil
	}
}
