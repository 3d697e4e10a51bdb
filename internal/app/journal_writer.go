package app

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// JournalWriter appends journal entries to an NDJSON file
type JournalWriter struct {
	fs   afero.Fs
	path string
}

// NewJournalWriter creates a new JournalWriter instance
func NewJournalWriter(fs afero.Fs, path string) *JournalWriter {
	return &JournalWriter{fs: fs, path: path}
}

// Path returns the target file
func (w *JournalWriter) Path() string {
	return w.path
}

// Append writes entries to the journal file, one JSON object per line
func (w *JournalWriter) Append(entries ...JournalEntry) error {
	for i := range entries {
		if err := validateJournalEntry(&entries[i]); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := w.fs.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// Flush appends every entry of j to the file
func (w *JournalWriter) Flush(j *Journal) error {
	return w.Append(j.Entries()...)
}

func validateJournalEntry(e *JournalEntry) error {
	if e.ID == "" {
		return errors.New("journal entry: id is required")
	}
	if e.Session == "" {
		return errors.New("journal entry: session is required")
	}
	if e.Event == "" {
		return errors.New("journal entry: event is required")
	}
	return nil
}
