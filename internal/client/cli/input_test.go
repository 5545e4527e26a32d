package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("Stellar Warfare\n"), "Title?", &out)
	if err != nil || got != "Stellar Warfare" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Title?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextDefault(rdr("\n"), "Title", "current", &out)
	if err != nil || got != "current" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	got, err = GetTextDefault(rdr("changed\n"), "Title", "current", &out)
	if err != nil || got != "changed" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a\nb"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer
	got, err := GetLines(rdr("Go\nPixel Art\n\n"), "Skills", &out)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "Go" || got[1] != "Pixel Art" {
		t.Fatalf("got %v", got)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}
