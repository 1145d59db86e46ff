package domain

// Marks is a bitset of entry state flags.
//
// The integer values are persisted as-is in the collection document, so
// existing bits must never be renumbered; new flags take the next unused
// bit position.
type Marks int

const (
	// MarkAny is a baseline bit set on every entry at creation. It carries
	// no filtering meaning and exists only for format compatibility.
	MarkAny Marks = 1 << iota
	MarkRead
	MarkFavorite
	MarkArchive
)

// markVocabulary is the union of all declared bits.
const markVocabulary = MarkAny | MarkRead | MarkFavorite | MarkArchive

// Set returns m with the given bits set. Unrelated bits are untouched.
func (m Marks) Set(flag Marks) Marks {
	return m | flag
}

// Clear returns m with the given bits cleared. Clearing a bit that is
// already clear is a no-op.
func (m Marks) Clear(flag Marks) Marks {
	return m &^ flag
}

// Has reports whether every bit of flag is set in m.
func (m Marks) Has(flag Marks) bool {
	return m&flag == flag
}

// Valid reports whether m uses only bits from the declared vocabulary.
func (m Marks) Valid() bool {
	return m&^markVocabulary == 0
}
