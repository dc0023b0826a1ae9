package rotlog

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// mkdirAll creates log directories; tests replace it to simulate denied access.
var mkdirAll = os.MkdirAll

// ensureDir creates every missing parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := mkdirAll(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: failed to create log directory: %w", ErrPermission, err)
		}
		return fmt.Errorf("%w: failed to create log directory: %w", ErrInvalidConfig, err)
	}
	return nil
}

// appendLine opens path for appending, creating it if absent, writes data and closes it.
// No handle is kept between calls.
func appendLine(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close log file: %w", cerr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}

// fileSize returns the current size of path in bytes.
func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// fileExists reports whether path exists. Errors other than not-exist are returned.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// compressFile writes a gzip copy of src to dst. On failure dst is removed
// so no partial archive is left behind.
func compressFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s for compression: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(dst)
		}
	}()

	zw := gzip.NewWriter(out)
	zw.Name = filepath.Base(src)
	if _, err = io.Copy(zw, in); err != nil {
		return fmt.Errorf("failed to compress %s: %w", src, err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("failed to close archive: %w", err)
	}
	return nil
}

// truncateFile empties path while leaving it in place.
func truncateFile(path string) error {
	if err := os.Truncate(path, 0); err != nil {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}
	return nil
}
