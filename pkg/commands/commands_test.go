package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

func tree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--root", root}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShowByID(t *testing.T) {
	root := tree(t, map[string]string{
		"inbox.md": "- [ ] &1 call the plumber @home\n",
	})
	out, err := run(t, root, "1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "- [ ] &1 call the plumber @home" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestShowByLabelJSON(t *testing.T) {
	root := tree(t, map[string]string{
		"inbox.md":     "- [ ] &1 call the plumber @home\n- [ ] &2 write report @work\n",
		"work/plan.md": "- [x] &3 fix roof @home\n",
	})
	out, err := run(t, root, "@home", "-o", "json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var groups []store.FileTasks
	if err := json.Unmarshal([]byte(out), &groups); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	var ids []int
	for _, g := range groups {
		for _, tk := range g.Tasks {
			ids = append(ids, tk.ID)
		}
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("expected tasks 1 and 3, got %v", ids)
	}
}

func TestShowDirectory(t *testing.T) {
	root := tree(t, map[string]string{
		"inbox.md":     "- [ ] &1 inbox task\n",
		"work/plan.md": "- [ ] &2 plan task\n",
	})
	out, err := run(t, root, "work")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "####### " + filepath.Join("work", "plan.md") + " #######\n- [ ] &2 plan task\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestUnknownTarget(t *testing.T) {
	root := tree(t, nil)
	if _, err := run(t, root, "nothing-here"); err == nil {
		t.Fatal("expected an error for an unknown target")
	}
}

func TestAddThenToggle(t *testing.T) {
	root := tree(t, map[string]string{"inbox.md": "- [ ] &4 existing\n"})

	out, err := run(t, root, "add", "buy milk @shop")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out, "- [ ] &5 buy milk @shop") {
		t.Fatalf("unexpected add output %q", out)
	}

	out, err = run(t, root, "toggle", "5")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !strings.Contains(out, "- [x] &5 buy milk @shop") {
		t.Fatalf("unexpected toggle output %q", out)
	}

	b, err := os.ReadFile(filepath.Join(root, "inbox.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "- [x] &5 buy milk @shop\n- [ ] &4 existing\n" {
		t.Fatalf("unexpected inbox %q", b)
	}
}

func TestNotFoundIsNotAnError(t *testing.T) {
	root := tree(t, nil)
	for _, args := range [][]string{{"rm", "99"}, {"toggle", "99"}, {"td", "99"}, {"url", "99"}} {
		out, err := run(t, root, args...)
		if err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		if !strings.Contains(out, "Task &99 is not in any of your files") {
			t.Fatalf("%v: unexpected output %q", args, out)
		}
	}
}

func TestMoveDestinationMissing(t *testing.T) {
	root := tree(t, map[string]string{"inbox.md": "- [ ] &1 task\n"})
	out, err := run(t, root, "mv", "1", "missing.md")
	if err != nil {
		t.Fatalf("mv: %v", err)
	}
	if !strings.Contains(out, "Destination file does not exist") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBadIDIsAnError(t *testing.T) {
	root := tree(t, nil)
	if _, err := run(t, root, "rm", "twelve"); err == nil {
		t.Fatal("expected an error for a non numeric id")
	}
}

func TestLabelMustStartWithMarker(t *testing.T) {
	root := tree(t, map[string]string{"inbox.md": "- [ ] &1 task\n"})
	if _, err := run(t, root, "al", "1", "home"); err == nil {
		t.Fatal("expected an error for a label without @")
	}
}

func TestArchiveAndLabels(t *testing.T) {
	root := tree(t, map[string]string{
		"inbox.md": "- [x] &1 done @a\n- [ ] &2 open @b\n",
	})
	if _, err := run(t, root, "archive"); err != nil {
		t.Fatalf("archive: %v", err)
	}
	out, err := run(t, root, "labels")
	if err != nil {
		t.Fatalf("labels: %v", err)
	}
	if out != "@b\n" {
		t.Fatalf("unexpected labels %q", out)
	}
}

func TestUnknownOutput(t *testing.T) {
	root := tree(t, nil)
	if _, err := run(t, root, "all", "-o", "xml"); err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
}

func TestDueWithin(t *testing.T) {
	today := task.DateOf(time.Now())
	root := tree(t, map[string]string{
		"inbox.md": fmt.Sprintf("- [ ] &1 soon %%%s\n- [ ] &2 later %%%s\n", today.AddDays(3), today.AddDays(30)),
	})

	out, err := run(t, root, "due")
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if out != "" {
		t.Fatalf("expected nothing due today, got %q", out)
	}

	out, err = run(t, root, "due", "--within", "1w")
	if err != nil {
		t.Fatalf("due --within: %v", err)
	}
	if !strings.Contains(out, "&1 soon") || strings.Contains(out, "&2 later") {
		t.Fatalf("unexpected output %q", out)
	}
}
