package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		exp      Level
		expError bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{" INFO ", Info, false},
		{"warning", Warning, false},
		{"verbose", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError != (err != nil) {
			t.Fatalf("[spec %d] expected error = %t; got %v", index, s.expError, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %s; got %s", index, s.exp, level)
		}
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden message")
	logger.Notice("visible message")

	SetLevel(Debug)
	logger.Debugf("debug %d", 42)
	SetLevel(Notice)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatal("expected debug message to be filtered at notice level")
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected notice message with module name in output; got %q", out)
	}
	if !strings.Contains(out, "debug 42") {
		t.Fatalf("expected debug message once level is lowered; got %q", out)
	}
}
