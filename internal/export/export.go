// Package export sequences invoice validation, document generation,
// and filesystem persistence into user-facing results.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rezonia/invoice-maker/internal/model"
	"github.com/rezonia/invoice-maker/internal/pdf"
)

// Result is the outcome of one export attempt. Every failure path
// resolves to OK=false with a message; nothing panics through.
type Result struct {
	OK      bool
	Message string
	Path    string
}

// Manager orchestrates invoice exports.
type Manager struct {
	gen  *pdf.Generator
	log  io.Writer
	open func(string) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogWriter sets the writer for diagnostic output.
func WithLogWriter(w io.Writer) Option {
	return func(m *Manager) { m.log = w }
}

// WithOpener overrides the file opener used by ExportAndOpen.
func WithOpener(open func(string) error) Option {
	return func(m *Manager) { m.open = open }
}

// NewManager creates an export manager around a generator.
func NewManager(gen *pdf.Generator, opts ...Option) *Manager {
	m := &Manager{
		gen:  gen,
		log:  os.Stderr,
		open: OpenWithViewer,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Export renders the invoice and writes it to path. An empty path
// derives Invoice_{safeNumber}.pdf in the user's documents directory.
// The document is produced fully in memory and materialized in one
// atomic step, so a failed export never truncates an earlier file.
func (m *Manager) Export(inv *model.Invoice, path string) Result {
	if path == "" {
		path = SuggestPath(DefaultFilename(inv))
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			m.logf("cannot create directory %s: %v", dir, err)
			return Result{OK: false, Message: "Cannot create directory: " + dir, Path: path}
		}
	}

	data, err := m.gen.Generate(inv)
	if err != nil {
		m.logf("failed to generate PDF %s: %v", path, err)
		return Result{OK: false, Message: "Failed to generate PDF", Path: path}
	}

	if err := writeFileAtomic(path, data); err != nil {
		m.logf("failed to write PDF %s: %v", path, err)
		return Result{OK: false, Message: "Failed to generate PDF", Path: path}
	}

	return Result{OK: true, Message: "Invoice PDF saved to: " + path, Path: path}
}

// ExportAndOpen exports the invoice and opens the result with the
// platform viewer. A viewer failure does not invalidate the export,
// it only degrades the message.
func (m *Manager) ExportAndOpen(inv *model.Invoice, path string) Result {
	res := m.Export(inv, path)
	if !res.OK {
		return res
	}

	if err := m.open(res.Path); err != nil {
		m.logf("cannot open %s with default application: %v", res.Path, err)
		res.Message += "\nCould not open automatically."
		return res
	}

	res.Message += "\nOpened with default application."
	return res
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.log != nil {
		fmt.Fprintf(m.log, format+"\n", args...)
	}
}
