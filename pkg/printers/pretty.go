package printers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Root, when set, shortens file titles to paths relative to it.
	Root string
	// Today highlights overdue tasks when set.
	Today *task.Date
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// style returns a color that is only applied when printing to a terminal.
func (pp *PrettyPrint) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.Out == nil {
		return c
	}
	if f, ok := pp.Out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return c
	}
	c.DisableColor()
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints the header shown above the tasks of a file.
func (pp *PrettyPrint) Title(file string) {
	t := pp.style(color.Bold)
	_, _ = t.Fprintf(pp.out(), "####### %s #######\n", pp.rel(file))
}

// Message prints a plain line.
func (pp *PrettyPrint) Message(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}

// Warn prints a highlighted line, used for not-found style outcomes.
func (pp *PrettyPrint) Warn(format string, args ...interface{}) {
	_, _ = pp.style(color.FgYellow).Fprintf(pp.out(), format+"\n", args...)
}

// Task prints one task line.
func (pp *PrettyPrint) Task(t task.Task) {
	line := task.Encode(t)
	var c *color.Color
	switch {
	case t.Done:
		c = pp.style(color.Faint)
	case pp.Today != nil && t.Due != nil && t.Due.Before(*pp.Today):
		c = pp.style(color.FgRed)
	case pp.Today != nil && t.Due != nil && *t.Due == *pp.Today:
		c = pp.style(color.FgHiYellow)
	default:
		c = pp.style()
	}
	_, _ = c.Fprintln(pp.out(), line)
}

// Tasks prints a file title followed by its tasks. Nothing is printed for an
// empty list.
func (pp *PrettyPrint) Tasks(file string, tasks ...task.Task) {
	if len(tasks) == 0 {
		return
	}
	pp.Title(file)
	for _, t := range tasks {
		pp.Task(t)
	}
}

// Groups prints every group of a query result.
func (pp *PrettyPrint) Groups(groups []store.FileTasks) {
	for _, g := range groups {
		pp.Tasks(g.File, g.Tasks...)
	}
}

// Table prints rows aligned in columns, the first row in bold.
func (pp *PrettyPrint) Table(header []string, rows [][]string) {
	bold := pp.style(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if len(header) > 0 {
		cells := make([]interface{}, len(header))
		for i, h := range header {
			cells[i] = bold.Sprint(h)
		}
		tbl.AddRow(cells...)
	}
	for _, r := range rows {
		cells := make([]interface{}, len(r))
		for i, v := range r {
			cells[i] = v
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) rel(file string) string {
	if pp.Root == "" {
		return file
	}
	rel, err := filepath.Rel(pp.Root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return rel
}

// Outcome prints the message for a by-id result that did not find its task
// and reports whether the caller should go on printing the task.
func (pp *PrettyPrint) Outcome(id int, res store.Result) bool {
	switch res.Outcome {
	case store.Found:
		return true
	case store.DestinationMissing:
		pp.Warn("Destination file does not exist: %s", pp.rel(res.File))
	default:
		pp.Warn("Task &%d is not in any of your files", id)
	}
	return false
}
