package pocket

import (
	"fmt"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

// CandidateEntry turns a raw remote record into a local entry. The remote
// record is authoritative for the temporal fields: created_at and
// updated_at are copied verbatim, not stamped with local time. The ID is
// derived from the URL exactly as local creation does it. Tags and marks
// beyond the baseline are left for the caller's ingestion policy.
func CandidateEntry(raw RawRecord) (*domain.Entry, error) {
	added, err := raw.AddedAt()
	if err != nil {
		return nil, fmt.Errorf("bad time_added %q: %w", raw.TimeAdded, err)
	}
	updated, err := raw.UpdatedAt()
	if err != nil {
		return nil, fmt.Errorf("bad time_updated %q: %w", raw.TimeUpdated, err)
	}

	e := &domain.Entry{
		ID:        domain.ComputeID(raw.ResolvedURL),
		Title:     raw.ResolvedTitle,
		URL:       raw.ResolvedURL,
		Tags:      []string{},
		Marks:     domain.MarkAny,
		CreatedAt: added,
		UpdatedAt: updated,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Candidates filters raw records to those updated strictly after the stored
// watermark and converts each survivor. Records at or before the watermark
// were seen by a previous sync.
func Candidates(raws []RawRecord, watermark int64) ([]domain.Entry, error) {
	candidates := make([]domain.Entry, 0, len(raws))
	for _, raw := range raws {
		updated, err := raw.UpdatedAt()
		if err != nil {
			return nil, fmt.Errorf("bad time_updated %q: %w", raw.TimeUpdated, err)
		}
		if updated <= watermark {
			continue
		}

		e, err := CandidateEntry(raw)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *e)
	}
	return candidates, nil
}
