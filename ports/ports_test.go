package ports_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arc-workspace/pagekit/ports"
)

func TestBufferClipboard(t *testing.T) {
	var c ports.BufferClipboard

	if err := c.Copy("first"); err != nil {
		t.Fatal(err)
	}
	if err := c.Copy("second"); err != nil {
		t.Fatal(err)
	}
	if got := c.Text(); got != "second" {
		t.Errorf("Text() = %q, want the last copy", got)
	}
}

func TestWriterClipboard(t *testing.T) {
	var sb strings.Builder
	c := ports.WriterClipboard{W: &sb}

	if err := c.Copy("piped text"); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "piped text" {
		t.Errorf("wrote %q", sb.String())
	}
}

func TestDirDownloader(t *testing.T) {
	dir := t.TempDir()
	d := ports.DirDownloader{Dir: filepath.Join(dir, "exports")}

	if err := d.Download("my-note.md", "# My Note\n"); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, "exports", "my-note.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "# My Note\n" {
		t.Errorf("file contents = %q", raw)
	}

	// Path components in the name must not escape the directory.
	if err := d.Download("../escape.md", "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.md")); !os.IsNotExist(err) {
		t.Error("download escaped its directory")
	}
}

func TestReaderConfirmer(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tc := range cases {
		var out strings.Builder
		c := ports.ReaderConfirmer{In: strings.NewReader(tc.in), Out: &out}
		if got := c.Confirm("Delete everything?"); got != tc.want {
			t.Errorf("Confirm with input %q = %v, want %v", tc.in, got, tc.want)
		}
		if !strings.Contains(out.String(), "Delete everything?") {
			t.Error("prompt not printed")
		}
	}
}

func TestAlwaysConfirm(t *testing.T) {
	if !(ports.AlwaysConfirm{}).Confirm("anything") {
		t.Error("AlwaysConfirm must return true")
	}
}
