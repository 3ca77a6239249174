package cache

import (
	"crypto/md5"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vyPal/langscan/lib/diag"
	"github.com/vyPal/langscan/lib/report"
	"github.com/vyPal/langscan/lib/symbols"
	"github.com/vyPal/langscan/lib/token"
)

// format is mixed into every key so results written by an older scanner
// are never served.
const format = "langscan-result-v1"

// ErrCorrupt marks a cache entry that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt cache entry")

// Cache stores scan results on disk, keyed by the MD5 of the source bytes.
type Cache struct {
	Dir string
}

// Open prepares a cache rooted at dir, or at the user cache directory when
// dir is empty.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "langscan")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &Cache{Dir: dir}, nil
}

func Key(src []byte) string {
	h := md5.New()
	io.WriteString(h, format)
	h.Write(src)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (c *Cache) path(src []byte) string {
	return filepath.Join(c.Dir, Key(src)+".gob")
}

// Load returns the cached result for src. The result's File is set to file
// since identical sources may live under different names.
func (c *Cache) Load(file string, src []byte) (*report.Result, bool, error) {
	f, err := os.Open(c.path(src))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	var result report.Result
	if err := gob.NewDecoder(f).Decode(&result); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.Name(), err)
	}
	// gob drops empty slices; keep hits identical to fresh scans
	if result.Tokens == nil {
		result.Tokens = []token.Token{}
	}
	if result.Symbols == nil {
		result.Symbols = []symbols.Entry{}
	}
	if result.Diagnostics == nil {
		result.Diagnostics = []diag.Diagnostic{}
	}
	result.File = file
	return &result, true, nil
}

func (c *Cache) Save(src []byte, result *report.Result) error {
	tmp, err := os.CreateTemp(c.Dir, "result-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(result); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path(src))
}

// Scan returns the cached result for src, scanning and storing it on a
// miss. A corrupt entry counts as a miss and is overwritten.
func (c *Cache) Scan(file string, src []byte) (result *report.Result, hit bool, err error) {
	result, hit, err = c.Load(file, src)
	if err != nil && !errors.Is(err, ErrCorrupt) || hit {
		return result, hit, err
	}
	result, err = report.Scan(file, src)
	if err != nil {
		return nil, false, err
	}
	return result, false, c.Save(src, result)
}
