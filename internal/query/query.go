// Package query provides pure functions over a snapshot of the bookmark
// collection. Nothing here mutates its input or touches the store.
package query

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/bonk/internal/domain"
)

// UntaggedKey is the bucket name standing in for entries with no tags. The
// sentinel exists only in query results and filter requests, never on an
// entry itself.
const UntaggedKey = "untagged"

// minPrefixLength is the shortest ID prefix accepted by FindByIDPrefix.
// Anything shorter invites mass-ambiguous matches.
const minPrefixLength = 6

// FilterByMarks filters a snapshot by read/favorite state.
//
// The default (wantRead=false) has inbox semantics: READ entries are
// excluded. wantRead=true flips to only-READ entries; the two modes are
// mutually exclusive, not additive. wantFavorite restricts to favorites as
// an independent second filter.
func FilterByMarks(entries []domain.Entry, wantRead, wantFavorite bool) []domain.Entry {
	filtered := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsRead() != wantRead {
			continue
		}
		if wantFavorite && !e.IsFavorite() {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// FilterByTags keeps entries whose tags intersect the requested set,
// case-insensitively. The request may name UntaggedKey to match entries
// with no tags. An empty request is the identity filter.
func FilterByTags(entries []domain.Entry, tags []string) []domain.Entry {
	if len(tags) == 0 {
		return entries
	}

	wanted := make(map[string]bool, len(tags))
	for _, t := range tags {
		wanted[strings.ToLower(t)] = true
	}

	filtered := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if len(e.Tags) == 0 {
			if wanted[UntaggedKey] {
				filtered = append(filtered, e)
			}
			continue
		}
		for _, t := range e.Tags {
			if wanted[strings.ToLower(t)] {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}

// GroupByTag buckets entries under each of their lower-cased tags; an entry
// with N tags appears in N groups, an entry with none appears only under
// UntaggedKey. Each group is sorted by creation time ascending. Use
// SortedKeys for display order.
func GroupByTag(entries []domain.Entry) map[string][]domain.Entry {
	groups := make(map[string][]domain.Entry)
	for _, e := range entries {
		if len(e.Tags) == 0 {
			groups[UntaggedKey] = append(groups[UntaggedKey], e)
			continue
		}
		for _, t := range e.Tags {
			key := strings.ToLower(t)
			groups[key] = append(groups[key], e)
		}
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt < group[j].CreatedAt
		})
	}
	return groups
}

// SortedKeys returns the group keys in lexicographic order.
func SortedKeys(groups map[string][]domain.Entry) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FindByIDPrefix resolves a user-supplied ID prefix against a snapshot.
//
// It returns domain.ErrPrefixTooShort below the minimum length, (-1, nil,
// nil) on zero matches (callers report that as "not found", it is not a
// failure), and a *domain.AmbiguousIDError when two or more entries match:
// the caller must never guess. The returned index is only meaningful
// against the exact snapshot passed in.
func FindByIDPrefix(entries []domain.Entry, prefix string) (int, *domain.Entry, error) {
	if len(prefix) < minPrefixLength {
		return -1, nil, domain.ErrPrefixTooShort
	}

	matchIdx := -1
	matches := 0
	for i := range entries {
		if strings.HasPrefix(entries[i].ID, prefix) {
			if matchIdx == -1 {
				matchIdx = i
			}
			matches++
		}
	}

	switch {
	case matches == 0:
		return -1, nil, nil
	case matches > 1:
		return -1, nil, &domain.AmbiguousIDError{Prefix: prefix, Matches: matches}
	}
	return matchIdx, &entries[matchIdx], nil
}

// TagFrequency counts lower-cased tag usage across a snapshot. The second
// return value is the number of entries with no tags at all.
func TagFrequency(entries []domain.Entry) (map[string]int, int) {
	counts := make(map[string]int)
	untagged := 0
	for _, e := range entries {
		if len(e.Tags) == 0 {
			untagged++
			continue
		}
		for _, t := range e.Tags {
			counts[strings.ToLower(t)]++
		}
	}
	return counts, untagged
}

// Sample returns up to n entries drawn at random without replacement.
func Sample(entries []domain.Entry, n int, rng *rand.Rand) []domain.Entry {
	if n > len(entries) {
		n = len(entries)
	}
	if n <= 0 {
		return []domain.Entry{}
	}

	picked := rng.Perm(len(entries))[:n]
	sampled := make([]domain.Entry, 0, n)
	for _, i := range picked {
		sampled = append(sampled, entries[i])
	}
	return sampled
}
