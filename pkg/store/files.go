package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ArchiveFile receives archived tasks. It is never scanned.
	ArchiveFile = ".done"
	// InboxFile is the default destination of new tasks.
	InboxFile = "inbox.md"

	tmpPrefix = ".rtd-"
	tmpSuffix = ".tmp"
)

// bookkeeping files are matched by file name, wherever they live in the tree.
var bookkeeping = map[string]struct{}{
	ArchiveFile: {},
}

func skipFile(name string) bool {
	if _, ok := bookkeeping[name]; ok {
		return true
	}
	return strings.HasPrefix(name, tmpPrefix) && strings.HasSuffix(name, tmpSuffix)
}

// Enumerate walks root and returns every regular file below it except the
// bookkeeping files. Paths come back in lexical order, so every operation in a
// single invocation sees the same traversal order.
func Enumerate(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if skipFile(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: enumerate %s: %w", root, err)
	}
	return files, nil
}

// readLines returns the lines of path without their trailing newline.
func readLines(path string) ([]string, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, data, nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.Split(s, "\n"), data, nil
}

func joinLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// rewrite replaces the contents of path with the lines returned by fn. The file
// is left untouched when nothing changed.
func rewrite(path string, fn func(lines []string) ([]string, error)) (bool, error) {
	lines, old, err := readLines(path)
	if err != nil {
		return false, err
	}
	out, err := fn(lines)
	if err != nil {
		return false, fmt.Errorf("store: %s: %w", path, err)
	}
	data := joinLines(out)
	if bytes.Equal(data, old) {
		return false, nil
	}
	if err := writeFile(path, data); err != nil {
		return false, err
	}
	return true, nil
}

// writeFile replaces path through a temp file and a rename in the same
// directory.
func writeFile(path string, data []byte) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), tmpPrefix+"*"+tmpSuffix)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("store: write %s: %w", path, err)
	}
	success = true
	return nil
}

// appendLines appends lines to path, starting on a fresh line.
func appendLines(path string, create bool, lines ...string) error {
	flags := os.O_RDWR | os.O_APPEND
	if create {
		flags |= os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("store: append %s: %w", path, err)
	}
	defer f.Close()

	data := joinLines(lines)
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("store: append %s: %w", path, err)
	}
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("store: append %s: %w", path, err)
		}
		if last[0] != '\n' {
			data = append([]byte{'\n'}, data...)
		}
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("store: append %s: %w", path, err)
	}
	return f.Close()
}

// ensureFile creates an empty file at path when it is missing.
func ensureFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("store: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return false, fmt.Errorf("store: create %s: %w", path, err)
	}
	return true, nil
}
