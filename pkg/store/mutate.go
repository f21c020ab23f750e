package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"tableflip.dev/rtd/pkg/task"
)

// Outcome tells the caller whether a by-id operation found its task.
type Outcome int

const (
	NotFound Outcome = iota
	Found
	// DestinationMissing is reported by Move when the target file does not exist.
	DestinationMissing
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case DestinationMissing:
		return "destination missing"
	default:
		return "not found"
	}
}

// Result describes what a by-id operation did.
type Result struct {
	Outcome Outcome
	// Task is the task after the operation was applied.
	Task task.Task
	// File is the file holding the task, or the missing destination.
	File string
}

// Found reports whether the task was found.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Add parses description into a new task, gives it the next id and writes it
// as the first line of dest. An empty dest means the inbox.
func (s *Store) Add(description, dest string) (*task.Task, error) {
	path := s.InboxPath()
	if dest != "" {
		path = s.Path(dest)
	}
	if !s.inTree(path) {
		return nil, fmt.Errorf("%w: %s is outside %s", ErrNotFound, path, s.Root)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("store: stat %s: %w", path, err)
	}

	t, err := task.New(description)
	if err != nil {
		return nil, err
	}
	t.ID = s.seq.Next()

	_, err = rewrite(path, func(lines []string) ([]string, error) {
		return append([]string{task.Encode(*t)}, lines...), nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("added task", "id", t.ID, "path", path)
	return t, nil
}

// Get looks a task up by id.
func (s *Store) Get(id int) (Result, error) {
	idx, err := s.index()
	if err != nil {
		return Result{}, err
	}
	path, ok := idx[id]
	if !ok {
		return Result{Outcome: NotFound}, nil
	}
	tasks, err := readTasks(path)
	if err != nil {
		return Result{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return Result{Outcome: Found, Task: t, File: path}, nil
		}
	}
	return Result{Outcome: NotFound}, nil
}

// edit applies fn to the first task carrying id, in the first file that holds
// it. fn returns the lines replacing the task line; nil drops it.
func (s *Store) edit(id int, fn func(t *task.Task, raw string) []string) (Result, error) {
	idx, err := s.index()
	if err != nil {
		return Result{}, err
	}
	path, ok := idx[id]
	if !ok {
		return Result{Outcome: NotFound}, nil
	}

	res := Result{Outcome: NotFound}
	_, err = rewrite(path, func(lines []string) ([]string, error) {
		out := make([]string, 0, len(lines))
		for _, l := range lines {
			if res.Found() {
				out = append(out, l)
				continue
			}
			t, err := task.Decode(l)
			if err != nil {
				return nil, err
			}
			if t == nil || t.ID != id {
				out = append(out, l)
				continue
			}
			out = append(out, fn(t, l)...)
			res = Result{Outcome: Found, Task: *t, File: path}
		}
		return out, nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Remove deletes the task line.
func (s *Store) Remove(id int) (Result, error) {
	return s.edit(id, func(*task.Task, string) []string {
		return nil
	})
}

// ToggleStatus flips the task between done and undone.
func (s *Store) ToggleStatus(id int) (Result, error) {
	return s.edit(id, func(t *task.Task, _ string) []string {
		t.Done = !t.Done
		return []string{task.Encode(*t)}
	})
}

// ToggleDate clears the due date, or sets it to today.
func (s *Store) ToggleDate(id int) (Result, error) {
	today := s.Today()
	return s.edit(id, func(t *task.Task, _ string) []string {
		t.ToggleDate(today)
		return []string{task.Encode(*t)}
	})
}

// AddLabel appends label to the task. The label is not validated here.
func (s *Store) AddLabel(id int, label string) (Result, error) {
	return s.edit(id, func(t *task.Task, _ string) []string {
		t.Labels = append(t.Labels, label)
		return []string{task.Encode(*t)}
	})
}

// Move relocates the task line, unmodified, to the end of dest. dest must
// already exist; otherwise nothing is modified.
func (s *Store) Move(id int, dest string) (Result, error) {
	destPath := s.Path(dest)
	if !s.inTree(destPath) {
		return Result{Outcome: DestinationMissing, File: destPath}, nil
	}
	destInfo, err := os.Stat(destPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Outcome: DestinationMissing, File: destPath}, nil
		}
		return Result{}, fmt.Errorf("store: stat %s: %w", destPath, err)
	}
	if destInfo.IsDir() {
		return Result{Outcome: DestinationMissing, File: destPath}, nil
	}

	idx, err := s.index()
	if err != nil {
		return Result{}, err
	}
	src, ok := idx[id]
	if !ok {
		return Result{Outcome: NotFound}, nil
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return Result{}, fmt.Errorf("store: stat %s: %w", src, err)
	}
	sameFile := os.SameFile(srcInfo, destInfo)

	lines, _, err := readLines(src)
	if err != nil {
		return Result{}, err
	}
	at := -1
	var moved *task.Task
	for i, l := range lines {
		t, err := task.Decode(l)
		if err != nil {
			return Result{}, fmt.Errorf("store: %s: %w", src, err)
		}
		if t != nil && t.ID == id {
			at, moved = i, t
			break
		}
	}
	if at < 0 {
		return Result{Outcome: NotFound}, nil
	}
	raw := lines[at]
	rest := make([]string, 0, len(lines))
	rest = append(rest, lines[:at]...)
	rest = append(rest, lines[at+1:]...)

	if sameFile {
		if err := writeFile(src, joinLines(append(rest, raw))); err != nil {
			return Result{}, err
		}
		return Result{Outcome: Found, Task: *moved, File: destPath}, nil
	}

	// Append first: a failure in between leaves a copy behind, never a loss.
	if err := appendLines(destPath, false, raw); err != nil {
		return Result{}, err
	}
	if err := writeFile(src, joinLines(rest)); err != nil {
		return Result{}, err
	}
	s.logger.Debug("moved task", "id", id, "from", src, "to", destPath)
	return Result{Outcome: Found, Task: *moved, File: destPath}, nil
}

// Archive moves every done task to the archive file, followed by the path of
// the file it came from. Undone tasks stay where they are.
func (s *Store) Archive() (int, error) {
	files, err := Enumerate(s.Root)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, f := range files {
		lines, _, err := readLines(f)
		if err != nil {
			return count, err
		}
		var archived []string
		keep := make([]string, 0, len(lines))
		for _, l := range lines {
			t, err := task.Decode(l)
			if err != nil {
				return count, fmt.Errorf("store: %s: %w", f, err)
			}
			switch {
			case t == nil:
				keep = append(keep, l)
			case t.Done:
				archived = append(archived, task.Encode(*t)+" "+f)
			default:
				keep = append(keep, task.Encode(*t))
			}
		}
		if len(archived) == 0 {
			continue
		}
		if err := appendLines(s.ArchivePath(), true, archived...); err != nil {
			return count, err
		}
		if err := writeFile(f, joinLines(keep)); err != nil {
			return count, err
		}
		count += len(archived)
		s.logger.Debug("archived tasks", "path", f, "count", len(archived))
	}
	return count, nil
}
