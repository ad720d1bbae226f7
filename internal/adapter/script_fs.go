// Package adapter contains infrastructure adapters for the vbs2js CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// ScriptFSAdapter abstracts the filesystem operations the workflow relies on.
// It hides direct `os` access so the conversion logic can be tested without
// touching the disk.
type ScriptFSAdapter interface {
	// ReadScript loads a source script. A missing input path is the only
	// fatal error the tool knows; it is reported before any conversion work.
	ReadScript(path m.Path) (m.Script, error)

	// WriteScript writes the converted document.
	WriteScript(path m.Path, content string) error

	// DefaultOutputPath derives the output path from the input path by
	// replacing its extension with the target dialect's conventional one.
	DefaultOutputPath(path m.Path) m.Path
}

// LocalScriptFSAdapter is the disk-backed ScriptFSAdapter implementation.
type LocalScriptFSAdapter struct{}

// NewLocalScriptFSAdapter constructs a LocalScriptFSAdapter ready to be wired
// into the workflow.
func NewLocalScriptFSAdapter() *LocalScriptFSAdapter {
	return &LocalScriptFSAdapter{}
}

// ReadScript loads the script at path.
func (a *LocalScriptFSAdapter) ReadScript(path m.Path) (m.Script, error) {
	if _, err := os.Stat(string(path)); err != nil {
		if os.IsNotExist(err) {
			return m.Script{}, fmt.Errorf("input script not found: %s", path)
		}

		return m.Script{}, fmt.Errorf("input script not accessible: %w", err)
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Script{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return m.Script{Origin: path, Text: string(content)}, nil
}

// WriteScript writes content to path.
func (a *LocalScriptFSAdapter) WriteScript(path m.Path, content string) error {
	if err := os.WriteFile(string(path), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// DefaultOutputPath swaps the input extension for the target one.
func (a *LocalScriptFSAdapter) DefaultOutputPath(path m.Path) m.Path {
	p := string(path)

	return m.Path(strings.TrimSuffix(p, filepath.Ext(p)) + m.TargetExt)
}
