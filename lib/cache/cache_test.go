package cache_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vyPal/langscan/lib/cache"
	"github.com/vyPal/langscan/lib/diag"
	"github.com/vyPal/langscan/lib/report"
)

func TestKey(t *testing.T) {
	a := cache.Key([]byte("start finish"))
	if a != cache.Key([]byte("start finish")) {
		t.Error("keys must be stable")
	}
	if a == cache.Key([]byte("start  finish")) {
		t.Error("different sources must have different keys")
	}
	if len(a) != 32 {
		t.Errorf("expected a hex md5, got %s", a)
	}
}

func TestScanCaches(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	src := []byte("declare Count = 'ab';")

	first, hit, err := c.Scan("one.lang", src)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first scan should miss")
	}

	second, hit, err := c.Scan("two.lang", src)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second scan should hit")
	}
	if second.File != "two.lang" {
		t.Errorf("expected file two.lang, got %s", second.File)
	}
	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("expected %d tokens, got %d", len(first.Tokens), len(second.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Errorf("token %d: expected %v, got %v", i, first.Tokens[i], second.Tokens[i])
		}
	}
	if len(second.Diagnostics) != 1 || second.Diagnostics[0].Kind != diag.MalformedLiteral {
		t.Errorf("unexpected diagnostics %v", second.Diagnostics)
	}
	if len(second.Symbols) != 1 || second.Symbols[0].Name != "Count" {
		t.Errorf("unexpected symbols %v", second.Symbols)
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	src := []byte("X")
	if err := os.WriteFile(filepath.Join(dir, cache.Key(src)+".gob"), []byte("junk"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Load("x.lang", src); !errors.Is(err, cache.ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestScanRepairsCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := cache.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	src := []byte("output(Total);")
	entry := filepath.Join(dir, cache.Key(src)+".gob")
	if err := os.WriteFile(entry, []byte("truncated"), 0600); err != nil {
		t.Fatal(err)
	}

	result, hit, err := c.Scan("a.lang", src)
	if err != nil {
		t.Fatalf("expected a corrupt entry to count as a miss, got %v", err)
	}
	if hit {
		t.Error("a corrupt entry must not be a hit")
	}
	if len(result.Symbols) != 1 || result.Symbols[0].Name != "Total" {
		t.Errorf("unexpected symbols %v", result.Symbols)
	}

	if _, hit, err := c.Scan("a.lang", src); err != nil || !hit {
		t.Errorf("expected the entry to be rewritten, got hit=%v err=%v", hit, err)
	}
}

func TestHitMatchesFreshJSON(t *testing.T) {
	c, err := cache.Open(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	for _, src := range []string{"start finish", "", "## only a comment"} {
		miss, hit, err := c.Scan("a.lang", []byte(src))
		if err != nil || hit {
			t.Fatalf("%q: expected a miss, got hit=%v err=%v", src, hit, err)
		}
		again, hit, err := c.Scan("a.lang", []byte(src))
		if err != nil || !hit {
			t.Fatalf("%q: expected a hit, got hit=%v err=%v", src, hit, err)
		}

		var fresh, cached bytes.Buffer
		if err := report.WriteJSON(&fresh, []*report.Result{miss}); err != nil {
			t.Fatal(err)
		}
		if err := report.WriteJSON(&cached, []*report.Result{again}); err != nil {
			t.Fatal(err)
		}
		if fresh.String() != cached.String() {
			t.Errorf("%q: cached JSON differs:\n%s\n---\n%s", src, fresh.String(), cached.String())
		}
		if !bytes.Contains(cached.Bytes(), []byte(`"diagnostics": []`)) {
			t.Errorf("%q: expected an empty diagnostics list:\n%s", src, cached.String())
		}
	}
}
