// Package ports defines the injected host capabilities the templates
// need (clipboard copy, text download, destructive-action confirm),
// so core logic never depends on a particular host environment and
// stays testable without one.
package ports

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Clipboard copies text to wherever the host considers the clipboard.
type Clipboard interface {
	Copy(text string) error
}

// Downloader delivers a named text file to the user.
type Downloader interface {
	Download(name, text string) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(message string) bool
}

// BufferClipboard keeps the last copied text in memory. The default
// for tests and headless hosts.
type BufferClipboard struct {
	mu   sync.Mutex
	text string
}

// Copy stores the text.
func (c *BufferClipboard) Copy(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// Text returns the last copied text.
func (c *BufferClipboard) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// WriterClipboard streams copied text to a writer, typically stdout
// for piping into a system clipboard tool.
type WriterClipboard struct {
	W io.Writer
}

// Copy writes the text to the underlying writer.
func (c WriterClipboard) Copy(text string) error {
	if _, err := io.WriteString(c.W, text); err != nil {
		return fmt.Errorf("failed to copy text: %w", err)
	}
	return nil
}

// DirDownloader writes downloads as files under a directory.
type DirDownloader struct {
	Dir string
}

// Download writes text to Dir/name.
func (d DirDownloader) Download(name, text string) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write download: %w", err)
	}
	return nil
}

// ReaderConfirmer prompts on out and reads a y/n answer from in.
type ReaderConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the message and accepts "y" or "yes" (any case).
func (c ReaderConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", message)
	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// AlwaysConfirm answers yes without prompting, for --yes flags and
// tests.
type AlwaysConfirm struct{}

// Confirm always returns true.
func (AlwaysConfirm) Confirm(string) bool { return true }
