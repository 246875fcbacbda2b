package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// History persists benchmark records as a JSON array on disk, so repeated
// runs accumulate into one comparable log. All methods are safe for
// concurrent use within a process; cross-process access is not arbitrated.
type History struct {
	mu   sync.Mutex
	path string
}

// NewHistory opens (creating if needed) the JSON log at path.
func NewHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bench: create history dir: %w", err)
		}
	}
	h := &History{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := h.write(nil); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("bench: stat history: %w", err)
	}
	return h, nil
}

// Append adds records to the log.
func (h *History) Append(records ...Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	existing, err := h.read()
	if err != nil {
		return err
	}
	return h.write(append(existing, records...))
}

// Load returns every record in the log, oldest first.
func (h *History) Load() ([]Record, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.read()
}

// ByAlgorithm returns the records whose algorithm label matches.
func (h *History) ByAlgorithm(label string) ([]Record, error) {
	all, err := h.Load()
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, r := range all {
		if r.Algorithm == label {
			out = append(out, r)
		}
	}
	return out, nil
}

// Recent returns the newest n records, oldest first. n <= 0 or n beyond
// the log length returns everything.
func (h *History) Recent(n int) ([]Record, error) {
	all, err := h.Load()
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(all) {
		return all, nil
	}
	return all[len(all)-n:], nil
}

// Clear truncates the log to an empty array.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.write(nil)
}

// ExportCSV writes the whole log to path in WriteCSV's format.
func (h *History) ExportCSV(path string) error {
	all, err := h.Load()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: create csv export: %w", err)
	}
	if err := WriteCSV(f, all); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (h *History) read() ([]Record, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return nil, fmt.Errorf("bench: read history: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("bench: decode history: %w", err)
	}
	return records, nil
}

func (h *History) write(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("bench: encode history: %w", err)
	}
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("bench: write history: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("bench: replace history: %w", err)
	}
	return nil
}
