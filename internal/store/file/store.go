// Package file persists the bookmark collection as a single JSON document
// on local disk. Every mutation is read-modify-write-all: the store has no
// partial update path and no cross-process locking.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

const (
	storageFile   = "storage.json"
	watermarkFile = "pocket.json"
	dotenvFile    = ".env"
	notesDir      = "notes"

	fileMode = 0o644
	dirMode  = 0o755
)

// watermark is the sync cutoff document. Losing it only causes a redundant
// re-sync, so it has no rollback protection.
type watermark struct {
	LastRetrieval int64 `json:"last_retrieval"`
}

// Store is a handle on one bookmark directory. It assumes exclusive
// single-process access; concurrent CLI invocations against the same
// directory are not guarded against.
type Store struct {
	dir string

	// writeFile is swappable so tests can simulate write faults.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New opens a store rooted at dir, creating the directory, the notes
// directory, an empty collection and a zero watermark on first use.
func New(dir string) (*Store, error) {
	s := &Store{
		dir:       dir,
		writeFile: os.WriteFile,
	}

	if err := os.MkdirAll(filepath.Join(dir, notesDir), dirMode); err != nil {
		return nil, fmt.Errorf("failed to create bonk directory: %w", err)
	}

	if _, err := os.Stat(s.storagePath()); os.IsNotExist(err) {
		if err := s.writeFile(s.storagePath(), []byte("[]"), fileMode); err != nil {
			return nil, fmt.Errorf("failed to initialize storage document: %w", err)
		}
	}

	if _, err := os.Stat(s.watermarkPath()); os.IsNotExist(err) {
		if err := s.WriteSyncWatermark(0); err != nil {
			return nil, fmt.Errorf("failed to initialize watermark document: %w", err)
		}
	}

	return s, nil
}

func (s *Store) storagePath() string   { return filepath.Join(s.dir, storageFile) }
func (s *Store) watermarkPath() string { return filepath.Join(s.dir, watermarkFile) }

// CredentialsPath returns the location of the sync credentials file.
func (s *Store) CredentialsPath() string { return filepath.Join(s.dir, dotenvFile) }

// NotesDir returns the directory holding entry note files.
func (s *Store) NotesDir() string { return filepath.Join(s.dir, notesDir) }

// ReadAll deserializes the full collection. A missing document behaves like
// the empty collection New initializes; an unparseable one is a
// *domain.CorruptError and is never silently replaced.
func (s *Store) ReadAll() ([]domain.Entry, error) {
	data, err := os.ReadFile(s.storagePath())
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read storage document: %w", err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &domain.CorruptError{Path: s.storagePath(), Err: err}
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

// WriteAll atomically replaces the collection document.
//
// The previous document is snapshotted into memory before the write. If the
// write faults, the snapshot is immediately written back so the document on
// disk is never left in a state that is neither the old nor the new
// collection, and the fault surfaces as a *domain.WriteError. If the
// rollback write itself also fails, that is unrecoverable corruption and
// surfaces as a *domain.FatalError instead.
func (s *Store) WriteAll(entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	previous, err := os.ReadFile(s.storagePath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to snapshot previous document: %w", err)
	}

	if err := s.writeFile(s.storagePath(), data, fileMode); err != nil {
		if previous == nil {
			// Nothing to restore; the document did not exist before.
			return &domain.WriteError{Path: s.storagePath(), Err: err}
		}
		if rbErr := s.writeFile(s.storagePath(), previous, fileMode); rbErr != nil {
			return &domain.FatalError{Path: s.storagePath(), WriteErr: err, RollbackErr: rbErr}
		}
		return &domain.WriteError{Path: s.storagePath(), Err: err}
	}

	return nil
}

// ReadSyncWatermark returns the last successful sync cutoff, in unix
// seconds. A missing document reads as zero.
func (s *Store) ReadSyncWatermark() (int64, error) {
	data, err := os.ReadFile(s.watermarkPath())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read watermark document: %w", err)
	}

	var w watermark
	if err := json.Unmarshal(data, &w); err != nil {
		return 0, &domain.CorruptError{Path: s.watermarkPath(), Err: err}
	}
	return w.LastRetrieval, nil
}

// WriteSyncWatermark records a new sync cutoff.
func (s *Store) WriteSyncWatermark(ts int64) error {
	data, err := json.MarshalIndent(watermark{LastRetrieval: ts}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal watermark: %w", err)
	}
	if err := s.writeFile(s.watermarkPath(), data, fileMode); err != nil {
		return fmt.Errorf("failed to write watermark document: %w", err)
	}
	return nil
}
