package symbols

import (
	"fmt"
	"io"
)

const (
	UnknownType = "unknown"
	GlobalScope = "global"
)

type Entry struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Scope string `json:"scope"`
	Line  int    `json:"line"`
}

// Table is a flat name registry. The first occurrence of a name wins and
// later insertions of the same name are ignored.
type Table struct {
	entries map[string]Entry
	order   []string
}

func NewTable() *Table {
	return &Table{
		entries: make(map[string]Entry),
	}
}

// Add registers name as first seen on line and reports whether it was new.
func (t *Table) Add(name string, line int) bool {
	return t.Insert(Entry{
		Name:  name,
		Type:  UnknownType,
		Scope: GlobalScope,
		Line:  line,
	})
}

func (t *Table) Insert(e Entry) bool {
	if _, ok := t.entries[e.Name]; ok {
		return false
	}
	t.entries[e.Name] = e
	t.order = append(t.order, e.Name)
	return true
}

func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

func (t *Table) Len() int {
	return len(t.order)
}

// Entries returns the registered names in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}
	return out
}

const rule = "||============================================================||"

func (t *Table) Print(w io.Writer) {
	WriteListing(w, t.Entries())
}

func WriteListing(w io.Writer, entries []Entry) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "||                        SYMBOL TABLE                        ||")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "|| %-20s %-12s %-12s %-6s ||\n", "Name", "Type", "Scope", "Line")
	fmt.Fprintln(w, rule)
	if len(entries) == 0 {
		fmt.Fprintln(w, "||                     (empty table)                          ||")
	}
	for _, e := range entries {
		fmt.Fprintf(w, "|| %-20s %-12s %-12s %-6d ||\n", e.Name, e.Type, e.Scope, e.Line)
	}
	fmt.Fprintln(w, rule)
}
