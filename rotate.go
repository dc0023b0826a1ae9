package rotlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	archiveExt = ".gz"
	tmpExt     = ".tmp"
)

// archiveName returns the path of generation gen for the log file at path:
// <dir>/<name>.<gen>.gz
func archiveName(path string, gen int) string {
	return path + "." + strconv.Itoa(gen) + archiveExt
}

// rotateCheck rotates the file at l.cfg.File once its size exceeds MaxSize.
// It reports whether a rotation happened.
func (l *Logger) rotateCheck() (bool, error) {
	size, err := fileSize(l.cfg.File)
	if err != nil {
		return false, fmt.Errorf("failed to stat log file: %w", err)
	}
	if size <= l.cfg.MaxSize {
		return false, nil
	}

	if err := l.rotate(); err != nil {
		return false, err
	}
	return true, nil
}

// rotate compresses the current file into a temporary archive, shifts the
// existing generations up by one, moves the new archive into generation 1 and
// truncates the file. Archives are only touched once compression succeeded.
// Generations are walked from the highest down so nothing is overwritten
// before it has been moved.
func (l *Logger) rotate() (err error) {
	path := l.cfg.File
	tmp := archiveName(path, 1) + tmpExt

	if err := compressFile(path, tmp); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	for gen := l.cfg.ArchiveCount - 1; gen >= 1; gen-- {
		src := archiveName(path, gen)
		exists, err := fileExists(src)
		if err != nil {
			return fmt.Errorf("failed to stat archive %s: %w", src, err)
		}
		if !exists {
			continue
		}

		dst := archiveName(path, gen+1)
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove archive %s: %w", dst, err)
		}
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("failed to shift archive %s: %w", src, err)
		}
	}

	// With a single generation nothing was shifted; the rename replaces it.
	if err := os.Rename(tmp, archiveName(path, 1)); err != nil {
		return fmt.Errorf("failed to move archive into place: %w", err)
	}
	return truncateFile(path)
}

// listArchives returns the existing generations of path within 1..limit,
// ordered newest (generation 1) first.
func listArchives(path string, limit int) ([]string, error) {
	dir := filepath.Dir(path)
	prefix := filepath.Base(path) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	type archive struct {
		gen  int
		path string
	}
	var found []archive
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(fname, prefix) || !strings.HasSuffix(fname, archiveExt) {
			continue
		}
		genStr := strings.TrimSuffix(strings.TrimPrefix(fname, prefix), archiveExt)
		gen, err := strconv.Atoi(genStr)
		if err != nil || gen < 1 || gen > limit || strconv.Itoa(gen) != genStr {
			continue
		}
		found = append(found, archive{gen: gen, path: filepath.Join(dir, fname)})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].gen < found[j].gen
	})

	paths := make([]string, len(found))
	for i, a := range found {
		paths[i] = a.path
	}
	return paths, nil
}
