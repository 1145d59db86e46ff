package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// idLength is the number of hex characters kept from the URL hash.
const idLength = 16

// Entry represents one saved bookmark.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, derived from URL at creation
	// time and never recomputed afterwards. Editing URL does not change it.
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	Title string `json:"title"`

	// URL is the addressed resource. Used to derive ID at creation.
	URL string `json:"url"`

	// Tags is an ordered list of labels. An empty list means the entry
	// belongs to the implicit "untagged" bucket; no sentinel value is ever
	// stored here.
	Tags []string `json:"tags"`

	// Marks is the bitset of state flags, see Marks.
	Marks Marks `json:"marks"`

	// ─────────────────────────────
	// Timestamps (unix seconds)
	// ─────────────────────────────

	// CreatedAt is immutable after creation.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is bumped on every mutation.
	UpdatedAt int64 `json:"updated_at"`

	// ─────────────────────────────
	// Optional payload (opaque to the store)
	// ─────────────────────────────

	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`

	// NoteFile names an associated note file under the notes directory.
	// Ownership of the note content lies outside the store.
	NoteFile string `json:"note_file,omitempty"`
}

// ComputeID derives the stable identifier for a URL: the first 16 hex
// characters of its SHA-256 hash. The same URL always produces the same ID,
// so two entries for one URL collide by design; callers wanting dedup must
// check before appending.
func ComputeID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:idLength]
}

// NewEntry builds a validated entry. now is the creation instant in unix
// seconds and seeds both timestamps. The MarkAny baseline bit is always set.
func NewEntry(title, url string, tags []string, marks Marks, now int64) (*Entry, error) {
	if tags == nil {
		tags = []string{}
	}

	e := &Entry{
		ID:        ComputeID(url),
		Title:     title,
		URL:       url,
		Tags:      tags,
		Marks:     marks.Set(MarkAny),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the entry invariants. Validation is deliberately
// permissive; it is called on every construction path and every edit commit.
func (e *Entry) Validate() error {
	if e.URL == "" {
		return &ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if !e.Marks.Valid() {
		return &ValidationError{Field: "marks", Reason: fmt.Sprintf("contains unknown bits: %d", e.Marks)}
	}
	if e.CreatedAt > e.UpdatedAt {
		return &ValidationError{Field: "updated_at", Reason: "must not precede created_at"}
	}
	return nil
}

// MarkWith applies exactly one mark transition and bumps UpdatedAt.
// Known limitation carried over from the mark vocabulary: favorite and
// archive can be set but have no inverse transition; only read has one.
func (e *Entry) MarkWith(name string, now int64) error {
	switch name {
	case "read":
		e.Marks = e.Marks.Set(MarkRead)
	case "unread":
		e.Marks = e.Marks.Clear(MarkRead)
	case "favorite":
		e.Marks = e.Marks.Set(MarkFavorite)
	case "archive":
		e.Marks = e.Marks.Set(MarkArchive)
	default:
		return fmt.Errorf("unknown mark %q", name)
	}
	e.UpdatedAt = now
	return nil
}

// IsRead reports whether the READ mark is set.
func (e *Entry) IsRead() bool { return e.Marks.Has(MarkRead) }

// IsFavorite reports whether the FAVORITE mark is set.
func (e *Entry) IsFavorite() bool { return e.Marks.Has(MarkFavorite) }

// EditableEntry is the subset of fields a human may change during an
// interactive edit. ID, timestamps and the note file reference are stripped
// before the entry is exposed and spliced back unchanged on commit.
type EditableEntry struct {
	Title       string         `yaml:"title"`
	URL         string         `yaml:"url"`
	Tags        []string       `yaml:"tags"`
	Marks       int            `yaml:"marks"`
	Description string         `yaml:"description,omitempty"`
	Metadata    map[string]any `yaml:"metadata,omitempty"`
}

// Editable returns the human-editable projection of the entry.
func (e *Entry) Editable() EditableEntry {
	return EditableEntry{
		Title:       e.Title,
		URL:         e.URL,
		Tags:        e.Tags,
		Marks:       int(e.Marks),
		Description: e.Description,
		Metadata:    e.Metadata,
	}
}

// ApplyEditable commits an edited projection back onto the entry. The
// non-editable fields keep their previous values, UpdatedAt bumps to now,
// and ID is NOT recomputed even when the URL changed: identity is frozen at
// creation. The result is validated before any caller persists it.
func (e *Entry) ApplyEditable(ed EditableEntry, now int64) error {
	updated := *e
	updated.Title = ed.Title
	updated.URL = ed.URL
	updated.Tags = ed.Tags
	if updated.Tags == nil {
		updated.Tags = []string{}
	}
	updated.Marks = Marks(ed.Marks)
	updated.Description = ed.Description
	updated.Metadata = ed.Metadata
	updated.UpdatedAt = now

	if err := updated.Validate(); err != nil {
		return err
	}
	*e = updated
	return nil
}
