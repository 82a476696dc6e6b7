package fornance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadState loads a persisted state from filename. A missing file is not an
// error: a fresh default state is returned instead, so a first run starts
// clean.
func LoadState(filename string) (State, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultState(), nil
	}
	if err != nil {
		return State{}, fmt.Errorf("could not open state file %q: %w", filename, err)
	}
	defer f.Close()

	st, err := DecodeState(f)
	if err != nil {
		return State{}, fmt.Errorf("could not decode state file %q: %w", filename, err)
	}
	return st, nil
}

// SaveState writes the state to filename, creating the parent directory when
// needed.
func SaveState(filename string, st State) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("could not create directory for state file %q: %w", filename, err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open state file %q for writing: %w", filename, err)
	}
	defer f.Close()
	return EncodeState(f, st)
}

// FilePersister persists every published state snapshot to a single file. It
// implements Persister.
type FilePersister struct {
	Filename string
}

func (p *FilePersister) Save(st State) error {
	return SaveState(p.Filename, st)
}
