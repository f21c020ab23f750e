package store

import (
	"sort"

	"tableflip.dev/rtd/pkg/task"
)

// Filter narrows a query. The zero Filter matches every task.
type Filter struct {
	// DueOnly keeps tasks with a due date that is today or earlier.
	DueOnly bool
	// Horizon extends DueOnly to tasks due within that many days from today.
	Horizon int
	// Label keeps tasks carrying exactly this label.
	Label string
}

// Match reports whether t passes the filter on the given day.
func (f Filter) Match(t *task.Task, today task.Date) bool {
	if f.DueOnly && (t.Due == nil || t.Due.After(today.AddDays(f.Horizon))) {
		return false
	}
	if f.Label != "" && !t.HasLabel(f.Label) {
		return false
	}
	return true
}

// FileTasks are the matching tasks of one file, in file order.
type FileTasks struct {
	File  string      `json:"file" yaml:"file"`
	Tasks []task.Task `json:"tasks" yaml:"tasks"`
}

// Query returns the tasks of files that match f, grouped per file. Files
// without matches are left out. A nil files queries the whole tree.
func (s *Store) Query(files []string, f Filter) ([]FileTasks, error) {
	if files == nil {
		var err error
		if files, err = Enumerate(s.Root); err != nil {
			return nil, err
		}
	}
	today := s.Today()
	var out []FileTasks
	for _, path := range files {
		tasks, err := readTasks(path)
		if err != nil {
			return nil, err
		}
		var matched []task.Task
		for i := range tasks {
			if f.Match(&tasks[i], today) {
				matched = append(matched, tasks[i])
			}
		}
		if len(matched) > 0 {
			out = append(out, FileTasks{File: path, Tasks: matched})
		}
	}
	return out, nil
}

// Labels returns every label used in the tree, sorted.
func (s *Store) Labels() ([]string, error) {
	files, err := Enumerate(s.Root)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, path := range files {
		tasks, err := readTasks(path)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			for _, l := range t.Labels {
				set[l] = struct{}{}
			}
		}
	}
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels, nil
}
