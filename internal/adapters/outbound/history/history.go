package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

const historyFile = ".hermes-rebrand/history/runs.json"

// MaxEntries bounds the stored history; older runs are dropped first.
const MaxEntries = 100

// FileHistory implements domain.RunHistory with a JSON array under the
// workspace state directory.
type FileHistory struct {
	max int
}

func New() *FileHistory {
	return &FileHistory{max: MaxEntries}
}

// Save appends entry and rewrites the file through a temp file in the same
// directory, so a crash never leaves a truncated history behind.
func (h *FileHistory) Save(workspace string, entry domain.RunEntry) error {
	entries, err := h.Load(workspace)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if len(entries) > h.max {
		entries = entries[len(entries)-h.max:]
	}

	fp := filepath.Join(workspace, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fp), "runs-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fp)
}

// Load returns the recorded runs, oldest first. A missing file is an empty history.
func (h *FileHistory) Load(workspace string) ([]domain.RunEntry, error) {
	fp := filepath.Join(workspace, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}
	return entries, nil
}
