// Package render formats entries for terminal output. It derives everything
// from entry fields; no extra state.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

const shortIDLength = 6

// ShortID is the truncated identifier shown in listings, long enough to be
// accepted back as a lookup prefix.
func ShortID(e *domain.Entry) string {
	if len(e.ID) < shortIDLength {
		return e.ID
	}
	return e.ID[:shortIDLength]
}

// ShortView is the one-line listing form: optional short ID, month added,
// title and URL.
func ShortView(e *domain.Entry, showID bool) string {
	added := time.Unix(e.CreatedAt, 0).Format("Jan 2006")
	if showID {
		return fmt.Sprintf("%s  %s  %s  %s", ShortID(e), added, e.Title, e.URL)
	}
	return fmt.Sprintf("%s  %s  %s", added, e.Title, e.URL)
}

// LongView is the multi-line detail form used by `bonk rand`.
func LongView(e *domain.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]\n", ShortID(e))
	fmt.Fprintf(&b, "  Title: %s\n", e.Title)
	fmt.Fprintf(&b, "  URL:   %s\n", e.URL)
	fmt.Fprintf(&b, "  Added: %s\n", time.Unix(e.CreatedAt, 0).Format("January 02, 2006"))
	fmt.Fprintf(&b, "  Marks: %s\n", markNames(e.Marks))
	fmt.Fprintf(&b, "  Tags:  %s\n", strings.Join(e.Tags, ", "))
	if e.Description != "" {
		fmt.Fprintf(&b, "  Notes: %s\n", e.Description)
	}
	return b.String()
}

// GroupHeader renders a tag group title in upper case.
func GroupHeader(tag string, count int) string {
	return fmt.Sprintf("── %s (%d) ──", strings.ToUpper(tag), count)
}

func markNames(m domain.Marks) string {
	names := make([]string, 0, 3)
	if m.Has(domain.MarkRead) {
		names = append(names, "read")
	}
	if m.Has(domain.MarkFavorite) {
		names = append(names, "favorite")
	}
	if m.Has(domain.MarkArchive) {
		names = append(names, "archive")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
