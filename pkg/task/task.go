// Package task encodes and decodes the one-line task record stored in markdown
// files, such as "- [ ] &12 Buy milk %2024-01-01 @home".
package task

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	Undone = "- [ ]"
	Done   = "- [x]"

	IDMarker    = '&'
	DateMarker  = '%'
	LabelMarker = '@'

	// NoID marks a task that has not been assigned an id yet.
	NoID = -1
)

// ErrMalformedRecord is returned when a task line carries an id token that is
// not an integer.
var ErrMalformedRecord = errors.New("malformed task record")

// ParseError reports the line that failed to decode.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrMalformedRecord, e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}

// Task is a single to-do item.
type Task struct {
	Done   bool     `json:"done" yaml:"done"`
	ID     int      `json:"id" yaml:"id"`
	Title  string   `json:"title" yaml:"title"`
	Due    *Date    `json:"due,omitempty" yaml:"due,omitempty"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// New builds an undone, unassigned task from a user supplied description
// which may carry date and label tokens.
func New(description string) (*Task, error) {
	t, err := Decode(Undone + " " + description)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.New("task description is empty")
	}
	t.Done = false
	return t, nil
}

// IsTask reports whether line starts with a status marker.
func IsTask(line string) bool {
	return strings.HasPrefix(line, Done) || strings.HasPrefix(line, Undone)
}

// IsLabel reports whether s is a label token.
func IsLabel(s string) bool {
	return len(s) > 0 && s[0] == LabelMarker && !strings.ContainsAny(s, " \t")
}

// Decode parses line. It returns nil, nil when line is not a task, in which case
// the caller keeps the line as it is.
func Decode(line string) (*Task, error) {
	if !IsTask(line) {
		return nil, nil
	}
	fields := strings.Fields(line[len(Done):])
	if len(fields) == 0 {
		return nil, nil
	}

	t := &Task{
		Done: strings.HasPrefix(line, Done),
		ID:   NoID,
	}
	words := make([]string, 0, len(fields))

	if first := fields[0]; first[0] == IDMarker {
		id, err := strconv.Atoi(first[1:])
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		t.ID = id
	} else {
		words = append(words, first)
	}

	for _, f := range fields[1:] {
		switch f[0] {
		case DateMarker:
			if t.Due == nil {
				if d, err := ParseDate(f[1:]); err == nil {
					t.Due = &d
					continue
				}
			}
			words = append(words, f)
		case LabelMarker:
			t.Labels = append(t.Labels, f)
		default:
			words = append(words, f)
		}
	}
	t.Title = strings.Join(words, " ")
	return t, nil
}

// Encode renders t as a task line.
func Encode(t Task) string {
	var b strings.Builder
	if t.Done {
		b.WriteString(Done)
	} else {
		b.WriteString(Undone)
	}
	b.WriteString(" ")
	b.WriteRune(IDMarker)
	b.WriteString(strconv.Itoa(t.ID))
	if t.Title != "" {
		b.WriteString(" ")
		b.WriteString(t.Title)
	}
	if t.Due != nil {
		b.WriteString(" ")
		b.WriteRune(DateMarker)
		b.WriteString(t.Due.String())
	}
	for _, l := range t.Labels {
		// labels keep their @ prefix
		b.WriteString(" ")
		b.WriteString(l)
	}
	return b.String()
}

func (t *Task) String() string {
	return Encode(*t)
}

// HasLabel reports whether the exact label token is present.
func (t *Task) HasLabel(label string) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// ToggleDate clears the due date, or sets it to today when there is none.
func (t *Task) ToggleDate(today Date) {
	if t.Due != nil {
		t.Due = nil
		return
	}
	t.Due = &today
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

// URLs returns the links found in the task line.
func (t *Task) URLs() []string {
	return urlPattern.FindAllString(t.String(), -1)
}
