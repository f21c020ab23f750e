// Package store keeps tasks inside the markdown files of a directory tree. The
// tree is the database: every operation re-reads the files it needs and
// rewrites them in full.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/rtd/pkg/task"
)

var (
	// ErrNotFound is returned when a file an operation writes to is missing.
	ErrNotFound = errors.New("not found")
)

// Sequence hands out task ids. It starts above the largest id in the tree.
type Sequence struct {
	max int
}

// Observe records an id already in use.
func (s *Sequence) Observe(id int) {
	if id > s.max {
		s.max = id
	}
}

// Next reserves and returns the next free id.
func (s *Sequence) Next() int {
	s.max++
	return s.max
}

// Max returns the largest id seen or handed out.
func (s *Sequence) Max() int {
	return s.max
}

// Store is a task tree rooted at Root.
type Store struct {
	Root string

	seq    *Sequence
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for bookkeeping messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open prepares the tree at root: the inbox is created when missing and the
// tree is initialized so that every task has a unique id.
func Open(root string, opts ...Option) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	s := &Store{
		Root:   root,
		seq:    &Sequence{},
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	created, err := ensureFile(s.InboxPath())
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("created inbox", "path", s.InboxPath())
	}

	if err := s.Initialize(); err != nil {
		return nil, err
	}
	return s, nil
}

// Sequence returns the id sequence owned by the store.
func (s *Store) Sequence() *Sequence {
	return s.seq
}

// InboxPath is the default destination for new tasks.
func (s *Store) InboxPath() string {
	return filepath.Join(s.Root, InboxFile)
}

// ArchivePath is where archived tasks are appended.
func (s *Store) ArchivePath() string {
	return filepath.Join(s.Root, ArchiveFile)
}

// Files lists the task files of the tree in traversal order.
func (s *Store) Files() ([]string, error) {
	return Enumerate(s.Root)
}

// Today is the current calendar date according to the store clock.
func (s *Store) Today() task.Date {
	return task.DateOf(s.now())
}

// Path resolves a path given relative to the root.
func (s *Store) Path(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.Root, name)
}

// inTree reports whether path lies beneath the root.
func (s *Store) inTree(path string) bool {
	rel, err := filepath.Rel(s.Root, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Initialize makes ids unique across the tree. Tasks without an id, and every
// later task repeating an id already seen in traversal order, get the next id
// of the sequence. Files are re-encoded and written back when they changed, and
// the archive file is created when missing.
func (s *Store) Initialize() error {
	files, err := Enumerate(s.Root)
	if err != nil {
		return err
	}

	s.seq = &Sequence{}
	for _, f := range files {
		tasks, err := readTasks(f)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			s.seq.Observe(t.ID)
		}
	}

	seen := make(map[int]struct{})
	for _, f := range files {
		changed, err := rewrite(f, func(lines []string) ([]string, error) {
			out := make([]string, 0, len(lines))
			for _, l := range lines {
				t, err := task.Decode(l)
				if err != nil {
					return nil, err
				}
				if t == nil {
					out = append(out, l)
					continue
				}
				if _, dup := seen[t.ID]; t.ID < 0 || dup {
					old := t.ID
					t.ID = s.seq.Next()
					s.logger.Debug("assigned id", "file", f, "old", old, "id", t.ID)
				}
				seen[t.ID] = struct{}{}
				out = append(out, task.Encode(*t))
			}
			return out, nil
		})
		if err != nil {
			return err
		}
		if changed {
			s.logger.Debug("rewrote file", "path", f)
		}
	}

	created, err := ensureFile(s.ArchivePath())
	if err != nil {
		return err
	}
	if created {
		s.logger.Info("created archive", "path", s.ArchivePath())
	}
	return nil
}

// readTasks decodes every task line of path.
func readTasks(path string) ([]task.Task, error) {
	lines, _, err := readLines(path)
	if err != nil {
		return nil, err
	}
	var tasks []task.Task
	for _, l := range lines {
		t, err := task.Decode(l)
		if err != nil {
			return nil, fmt.Errorf("store: %s: %w", path, err)
		}
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

// index maps every id to the first file, in traversal order, holding it.
func (s *Store) index() (map[int]string, error) {
	files, err := Enumerate(s.Root)
	if err != nil {
		return nil, err
	}
	idx := make(map[int]string)
	for _, f := range files {
		tasks, err := readTasks(f)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			if _, ok := idx[t.ID]; !ok {
				idx[t.ID] = f
			}
		}
	}
	return idx, nil
}
