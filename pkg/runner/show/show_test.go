package show

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/rtd/pkg/store"
)

func openTree(t *testing.T, files map[string]string) *store.Store {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	clock := func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local) }
	s, err := store.Open(root, store.WithClock(clock))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestShowGroupsByFile(t *testing.T) {
	s := openTree(t, map[string]string{
		"a.md": "- [ ] &1 first %2024-03-01\n",
		"b.md": "- [ ] &2 second\n- [x] &3 third %2024-03-10\n",
	})

	var out bytes.Buffer
	r := Show{Filter: store.Filter{DueOnly: true}, Store: s, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	want := "####### a.md #######\n- [ ] &1 first %2024-03-01\n" +
		"####### b.md #######\n- [x] &3 third %2024-03-10\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestShowEmptyJSON(t *testing.T) {
	s := openTree(t, map[string]string{"a.md": "- [ ] &1 first\n"})

	var out bytes.Buffer
	r := Show{Filter: store.Filter{Label: "@none"}, Output: "json", Store: s, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if out.String() != "[]\n" {
		t.Fatalf("expected an empty list, got %q", out.String())
	}
}

func TestGetNotFound(t *testing.T) {
	s := openTree(t, nil)

	var out bytes.Buffer
	r := Get{ID: 42, Store: s, Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.String() != "Task &42 is not in any of your files\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
