package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/vyPal/langscan/lib/diag"
	"github.com/vyPal/langscan/lib/report"
	"github.com/vyPal/langscan/lib/token"
)

func init() {
	color.NoColor = true
}

func TestScan(t *testing.T) {
	r, err := report.Scan("test1.lang", []byte("start\ndeclare Count = 1.2345678;\nfinish"))
	if err != nil {
		t.Fatal(err)
	}
	if r.File != "test1.lang" {
		t.Errorf("unexpected file %s", r.File)
	}
	if last := r.Tokens[len(r.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("expected trailing EOF, got %v", last)
	}
	if len(r.Symbols) != 1 || r.Symbols[0].Name != "Count" || r.Symbols[0].Line != 2 {
		t.Errorf("unexpected symbols %v", r.Symbols)
	}
	if r.Clean() || len(r.Diagnostics) != 1 || r.Diagnostics[0].Kind != diag.MalformedLiteral {
		t.Errorf("unexpected diagnostics %v", r.Diagnostics)
	}
}

func TestScanNilSource(t *testing.T) {
	if _, err := report.Scan("missing.lang", nil); err == nil {
		t.Error("expected an error for a nil buffer")
	}
}

func TestWrite(t *testing.T) {
	r, err := report.Scan("test2.lang", []byte("loop X @"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r.Write(&buf, report.DefaultOptions)
	out := buf.String()
	for _, want := range []string{
		"--- Running test2.lang ---",
		"TOKEN STREAM",
		`<LOOP, "loop", Line: 1, Col: 1>`,
		`<ERROR, "@", Line: 1, Col: 8>`,
		"Total tokens: 4",
		"SYMBOL TABLE",
		"LEXICAL ERRORS",
		"Total errors: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}

	buf.Reset()
	r.Write(&buf, report.Options{Errors: true})
	if strings.Contains(buf.String(), "TOKEN STREAM") || strings.Contains(buf.String(), "SYMBOL TABLE") {
		t.Errorf("disabled sections were written:\n%s", buf.String())
	}
}

func TestWriteTokensColour(t *testing.T) {
	color.NoColor = false
	defer func() {
		color.NoColor = true
	}()

	r, err := report.Scan("c.lang", []byte("loop X += 1 @"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	r.WriteTokens(&buf)
	out := buf.String()
	for _, want := range []string{
		"\x1b[34;1m  <LOOP",
		"\x1b[33m  <PLUS_ASSIGN",
		"\x1b[32m  <INTEGER",
		"\x1b[31m  <ERROR",
		"\n  <IDENTIFIER",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%q", want, out)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	r, err := report.Scan("a.lang", []byte("X"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, []*report.Result{r}); err != nil {
		t.Fatal(err)
	}

	var decoded []report.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || len(decoded[0].Tokens) != 2 || decoded[0].Tokens[0].Kind != token.IDENTIFIER {
		t.Errorf("unexpected decoded result %+v", decoded)
	}
}
