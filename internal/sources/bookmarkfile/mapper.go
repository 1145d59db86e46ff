package bookmarkfile

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

// Mapper converts a parsed bookmarks file into collection entries.
type Mapper struct{}

// NewMapper creates a bookmark mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts every record in the file into an entry. The bookmark name
// becomes the title (abbr as fallback), the category becomes a tag, and
// identity/timestamps follow the local-creation rules via domain.NewEntry.
func (m *Mapper) Map(file File, now int64) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0)

	for _, category := range file {
		for categoryName, bookmarkList := range category {
			tag := strings.ToLower(categoryName)

			for _, bookmarkMap := range bookmarkList {
				for bookmarkName, recordList := range bookmarkMap {
					if len(recordList) == 0 {
						continue
					}
					record := recordList[0]

					if record.Href == "" {
						continue
					}

					title := bookmarkName
					if title == "" {
						title = record.Abbr
					}

					e, err := domain.NewEntry(title, record.Href, []string{tag}, 0, now)
					if err != nil {
						return nil, fmt.Errorf("failed to map bookmark %q: %w", bookmarkName, err)
					}
					entries = append(entries, *e)
				}
			}
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid bookmarks found in file")
	}

	return entries, nil
}
