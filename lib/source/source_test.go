package source_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/vyPal/langscan/lib/source"
)

func commit(t *testing.T, wt *git.Worktree, msg string) {
	t.Helper()
	_, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLoadWorkingTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.lang")
	if err := os.WriteFile(path, []byte("start finish"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := source.Loader{}.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(src) != "start finish" {
		t.Errorf("unexpected contents %q", src)
	}

	empty := filepath.Join(dir, "empty.lang")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	src, err = source.Loader{}.Load(empty)
	if err != nil || src == nil {
		t.Errorf("expected an empty non-nil buffer, got %v %v", src, err)
	}

	if _, err := (source.Loader{}).Load(filepath.Join(dir, "missing.lang")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadRevision(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "src", "main.lang")
	if err := os.WriteFile(path, []byte("declare First;"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add("src/main.lang"); err != nil {
		t.Fatal(err)
	}
	commit(t, wt, "first")

	if err := os.WriteFile(path, []byte("declare Second;"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := wt.Add("src/main.lang"); err != nil {
		t.Fatal(err)
	}
	commit(t, wt, "second")

	if err := os.WriteFile(path, []byte("declare Uncommitted;"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		revision string
		expected string
	}{
		{"", "declare Uncommitted;"},
		{"HEAD", "declare Second;"},
		{"HEAD~1", "declare First;"},
	}
	for _, tt := range tests {
		src, err := source.Loader{Revision: tt.revision}.Load(path)
		if err != nil {
			t.Fatalf("%q: %v", tt.revision, err)
		}
		if string(src) != tt.expected {
			t.Errorf("%q: expected %q, got %q", tt.revision, tt.expected, src)
		}
	}

	if _, err := (source.Loader{Revision: "HEAD"}).Load(filepath.Join(dir, "src", "other.lang")); err == nil {
		t.Error("expected an error for a file missing from the revision")
	}
}
