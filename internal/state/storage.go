package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thruflo/ralphloop/internal/logging"
)

// Store handles the on-disk loop record under <root>/<dirName>/state.json.
// It does no locking; the last successful write wins.
type Store struct {
	root    string
	dirName string
	log     *logging.Logger
}

// NewStore creates a Store rooted at the project directory root.
// An empty dirName selects DefaultDirName.
func NewStore(root, dirName string) *Store {
	if dirName == "" {
		dirName = DefaultDirName
	}
	return &Store{
		root:    root,
		dirName: dirName,
		log:     logging.Default().With("component", "store"),
	}
}

// SetLogger replaces the logger used for swallowed errors.
func (s *Store) SetLogger(l *logging.Logger) {
	s.log = l.With("component", "store")
}

// Dir returns the state directory.
func (s *Store) Dir() string {
	return filepath.Join(s.root, s.dirName)
}

// Path returns the state file path.
func (s *Store) Path() string {
	return filepath.Join(s.Dir(), StateFileName)
}

// DirName returns the state directory name relative to the root.
func (s *Store) DirName() string {
	return s.dirName
}

// Exists reports whether a state file is present, parseable or not.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Write persists the full record, creating the state directory if needed.
// The file is replaced atomically so a reader never sees a partial record.
func (s *Store) Write(st *LoopState) error {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set state file mode: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	committed = true

	return nil
}

// Read loads the record. It returns nil with no error when the file does not
// exist, and also when the file is corrupt; the latter is logged.
func (s *Store) Read() (*LoopState, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	st, err := decode(path, data)
	if err != nil {
		s.log.Warn("ignoring unreadable state file", "path", path, "error", err)
		return nil, nil
	}
	return st, nil
}

func decode(path string, data []byte) (*LoopState, error) {
	var st LoopState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &CorruptStateError{Path: path, Err: err}
	}
	if err := st.validate(); err != nil {
		return nil, &CorruptStateError{Path: path, Err: err}
	}
	return &st, nil
}

// Delete removes the state file and reports whether one existed.
// An emptied state directory is removed as well; failing to do so is only logged.
func (s *Store) Delete() (bool, error) {
	if err := os.Remove(s.Path()); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to delete state file: %w", err)
	}

	dir := s.Dir()
	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) == 0 {
		if err := os.Remove(dir); err != nil {
			s.log.Warn("failed to remove empty state directory", "dir", dir, "error", err)
		}
	}

	return true, nil
}

// ignoreHeader precedes the state directory entry in the ignore file.
const ignoreHeader = "# Ralph Loop Agent"

// EnsureIgnored appends "<dirName>/" to <root>/<ignoreFile>, creating the file
// if needed. It does nothing when dirName already appears anywhere in the file,
// even as part of an unrelated line.
func EnsureIgnored(root, dirName, ignoreFile string) error {
	if ignoreFile == "" {
		ignoreFile = DefaultIgnoreFile
	}
	path := filepath.Join(root, ignoreFile)

	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read ignore file: %w", err)
	}
	if strings.Contains(string(content), dirName) {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open ignore file: %w", err)
	}
	defer f.Close()

	entry := "\n" + ignoreHeader + "\n" + dirName + "/\n"
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to update ignore file: %w", err)
	}
	return nil
}
