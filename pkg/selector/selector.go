// Package selector decides what a free-form command line token refers to: a
// task id, a label, or a file or directory of the task tree.
package selector

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

// Kind is the kind of thing a token resolved to.
type Kind int

const (
	KindUnknown Kind = iota
	KindID
	KindLabel
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindID:
		return "id"
	case KindLabel:
		return "label"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// ErrUnknownTarget is returned for tokens that are neither an id, a label nor
// a path below the root.
var ErrUnknownTarget = errors.New("unknown target")

// Target is a resolved token.
type Target struct {
	Kind  Kind
	ID    int
	Label string
	// Path is the file or directory a KindPath token names.
	Path string
	// Files are the task files to show for a KindPath token.
	Files []string
}

// Resolve resolves token against the tree at root. An integer always wins over
// a file of the same name.
func Resolve(root, token string) (Target, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Target{}, fmt.Errorf("%w: empty", ErrUnknownTarget)
	}

	if id, err := strconv.Atoi(token); err == nil {
		return Target{Kind: KindID, ID: id}, nil
	}

	if token[0] == task.LabelMarker {
		return Target{Kind: KindLabel, Label: token}, nil
	}

	if t, ok, err := resolvePath(root, token); err != nil {
		return Target{}, err
	} else if ok {
		return t, nil
	}

	return Target{}, fmt.Errorf("%w: %s", ErrUnknownTarget, token)
}

func resolvePath(root, token string) (Target, bool, error) {
	path := token
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, token)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Target{}, false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Target{}, false, nil
		}
		return Target{}, false, fmt.Errorf("selector: stat %s: %w", path, err)
	}

	if info.IsDir() {
		files, err := store.Enumerate(path)
		if err != nil {
			return Target{}, false, err
		}
		if files == nil {
			files = []string{}
		}
		return Target{Kind: KindPath, Path: path, Files: files}, true, nil
	}
	if !info.Mode().IsRegular() || filepath.Base(path) == store.ArchiveFile {
		return Target{}, false, nil
	}
	return Target{Kind: KindPath, Path: path, Files: []string{path}}, true, nil
}
