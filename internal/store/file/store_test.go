package file

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func testEntries(t *testing.T) []domain.Entry {
	t.Helper()
	a, err := domain.NewEntry("Example A", "https://a.example.com", []string{"go"}, 0, 1700000000)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	b, err := domain.NewEntry("Example B", "https://b.example.com", nil, domain.MarkFavorite, 1700000100)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	return []domain.Entry{*a, *b}
}

func TestNewInitializesOnFirstUse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bonk")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() on fresh store error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("fresh store has %d entries, want 0", len(entries))
	}

	ts, err := s.ReadSyncWatermark()
	if err != nil {
		t.Fatalf("ReadSyncWatermark() error = %v", err)
	}
	if ts != 0 {
		t.Errorf("fresh watermark = %d, want 0", ts)
	}

	if _, err := os.Stat(s.NotesDir()); err != nil {
		t.Errorf("notes directory not created: %v", err)
	}
}

func TestWriteAllReadAllRoundTrip(t *testing.T) {
	s := newTestStore(t)
	entries := testEntries(t)

	if err := s.WriteAll(entries); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, entries)
	}
}

func TestReadAllCorruptDocument(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.storagePath(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to corrupt document: %v", err)
	}

	_, err := s.ReadAll()
	var corrupt *domain.CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("ReadAll() error = %v, want *domain.CorruptError", err)
	}
}

func TestWriteAllRollsBackOnFault(t *testing.T) {
	s := newTestStore(t)
	before := testEntries(t)

	if err := s.WriteAll(before); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	// First write faults, the rollback write goes through.
	faults := 1
	realWrite := s.writeFile
	s.writeFile = func(name string, data []byte, perm os.FileMode) error {
		if faults > 0 {
			faults--
			return errors.New("disk full")
		}
		return realWrite(name, data, perm)
	}

	next, err := domain.NewEntry("Example C", "https://c.example.com", nil, 0, 1700000200)
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}

	err = s.WriteAll(append(before, *next))
	var writeErr *domain.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("WriteAll() error = %v, want *domain.WriteError", err)
	}

	s.writeFile = realWrite
	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() after rollback error = %v", err)
	}
	if !reflect.DeepEqual(got, before) {
		t.Errorf("collection after rollback mismatch:\n got %+v\nwant %+v", got, before)
	}
}

func TestWriteAllFatalWhenRollbackFails(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteAll(testEntries(t)); err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}

	s.writeFile = func(name string, data []byte, perm os.FileMode) error {
		return errors.New("device gone")
	}

	err := s.WriteAll(nil)
	var fatal *domain.FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("WriteAll() error = %v, want *domain.FatalError", err)
	}
}

func TestSyncWatermarkRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteSyncWatermark(1700000500); err != nil {
		t.Fatalf("WriteSyncWatermark() error = %v", err)
	}

	ts, err := s.ReadSyncWatermark()
	if err != nil {
		t.Fatalf("ReadSyncWatermark() error = %v", err)
	}
	if ts != 1700000500 {
		t.Errorf("watermark = %d, want 1700000500", ts)
	}
}
