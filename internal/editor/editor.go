// Package editor implements the external-editor round trip: one entry's
// editable fields go out to a temp document, an interactive editor runs,
// and the result comes back as untrusted input.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

// Editor runs an external editor over a temp YAML document.
type Editor struct {
	// Command is the editor binary, e.g. "nvim".
	Command string

	// run is swappable so tests can edit the file without a subprocess.
	run func(command, path string) error
}

// New creates an editor wrapper around the given command.
func New(command string) *Editor {
	return &Editor{
		Command: command,
		run:     runInteractive,
	}
}

func runInteractive(command, path string) error {
	cmd := exec.Command(command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// EditEntry exposes the entry's editable fields in a temp document, blocks
// until the editor exits, then validates and commits the result. The
// non-editable fields (id, timestamps, note file) never reach the document
// and are spliced back unchanged; only updated_at moves, bumped by the
// entry itself. On any failure the entry is left untouched, so an aborted
// edit never reaches the store. The temp document is removed on every exit
// path.
func (ed *Editor) EditEntry(e *domain.Entry, now int64) error {
	dir, err := os.MkdirTemp("", "bonk-edit-")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path := filepath.Join(dir, "entry.yaml")

	data, err := yaml.Marshal(e.Editable())
	if err != nil {
		return fmt.Errorf("failed to marshal entry for editing: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write edit document: %w", err)
	}

	if err := ed.run(ed.Command, path); err != nil {
		return fmt.Errorf("editor %s failed: %w", ed.Command, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read edit document back: %w", err)
	}

	// The edited document is untrusted input; it goes through the same
	// validation as any other entry construction path.
	var result domain.EditableEntry
	if err := yaml.Unmarshal(edited, &result); err != nil {
		return fmt.Errorf("failed to parse edited document: %w", err)
	}

	return e.ApplyEditable(result, now)
}
