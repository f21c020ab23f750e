package selector

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"12", "inbox.md", "work/a.md", "work/deep/b.md", "work/.done"} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestResolve(t *testing.T) {
	root := tree(t)

	tests := map[string]struct {
		token string
		want  Target
	}{
		"id": {
			token: "7",
			want:  Target{Kind: KindID, ID: 7},
		},
		"id wins over file name": {
			token: "12",
			want:  Target{Kind: KindID, ID: 12},
		},
		"negative id": {
			token: "-3",
			want:  Target{Kind: KindID, ID: -3},
		},
		"label": {
			token: "@work",
			want:  Target{Kind: KindLabel, Label: "@work"},
		},
		"file": {
			token: "inbox.md",
			want: Target{
				Kind:  KindPath,
				Path:  filepath.Join(root, "inbox.md"),
				Files: []string{filepath.Join(root, "inbox.md")},
			},
		},
		"directory": {
			token: "work",
			want: Target{
				Kind: KindPath,
				Path: filepath.Join(root, "work"),
				Files: []string{
					filepath.Join(root, "work/a.md"),
					filepath.Join(root, "work/deep/b.md"),
				},
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(root, tc.token)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	root := tree(t)
	for _, token := range []string{"", "nothing-here", "work/.done", "../outside", "1.5"} {
		_, err := Resolve(root, token)
		if !errors.Is(err, ErrUnknownTarget) {
			t.Errorf("Resolve(%q): expected ErrUnknownTarget, got %v", token, err)
		}
	}
}
