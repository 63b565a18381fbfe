package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rezonia/invoice-maker/internal/model"
)

// invalidFilenameChars are reserved on at least one supported platform.
const invalidFilenameChars = `<>:"/\|?*`

// SafeFilename converts arbitrary text into a filesystem-legal name:
// reserved characters become underscores, leading/trailing spaces and
// dots are trimmed, and an empty result falls back to "invoice".
func SafeFilename(name string) string {
	safe := name
	for _, c := range invalidFilenameChars {
		safe = strings.ReplaceAll(safe, string(c), "_")
	}
	safe = strings.Trim(safe, " .")
	if safe == "" {
		safe = "invoice"
	}
	return safe
}

// DefaultFilename returns the default PDF filename for an invoice.
func DefaultFilename(inv *model.Invoice) string {
	return "Invoice_" + SafeFilename(inv.Number) + ".pdf"
}

// DocumentsDir returns the user's documents directory, falling back to
// the home directory. Empty when neither resolves.
func DocumentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	docs := filepath.Join(home, "Documents")
	if info, err := os.Stat(docs); err == nil && info.IsDir() {
		return docs
	}
	return home
}

// SuggestPath joins a filename with the best available save location.
// Falls back to the bare filename when no directory resolves.
func SuggestPath(filename string) string {
	if dir := DocumentsDir(); dir != "" {
		return filepath.Join(dir, filename)
	}
	return filename
}

// writeFileAtomic writes data to path through a temp file in the same
// directory, so a failed write never leaves a truncated file in place
// of a previous one.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".invoice-*.pdf")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
