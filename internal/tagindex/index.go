// Package tagindex groups bookmarks by tag.
package tagindex

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gorewood/bookmarkgen/internal/bookmark"
)

// TagEntry is the aggregate for one tag string.
// Field order matches the sorted key order of the exchange mapping.
type TagEntry struct {
	Bookmarks []*bookmark.Bookmark `json:"bookmarks"`
	Name      string               `json:"name"`
	SafeName  string               `json:"safe_name"`
}

// Index maps tag strings to entries and remembers first-seen order.
type Index struct {
	entries map[string]*TagEntry
	order   []string
}

// New returns an empty Index.
func New() *Index {
	return &Index{entries: make(map[string]*TagEntry)}
}

// Add appends bm to the entry for tag, creating the entry on first sight.
func (idx *Index) Add(tag string, bm *bookmark.Bookmark) *TagEntry {
	entry, ok := idx.entries[tag]
	if !ok {
		entry = &TagEntry{Name: tag, SafeName: SafeName(tag)}
		idx.entries[tag] = entry
		idx.order = append(idx.order, tag)
	}
	entry.Bookmarks = append(entry.Bookmarks, bm)
	return entry
}

// Len returns the number of distinct tags.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Entries returns the entries in first-seen order.
func (idx *Index) Entries() []*TagEntry {
	out := make([]*TagEntry, 0, len(idx.order))
	for _, tag := range idx.order {
		out = append(out, idx.entries[tag])
	}
	return out
}

// Names returns the tag strings sorted ascending.
func (idx *Index) Names() []string {
	names := make([]string, len(idx.order))
	copy(names, idx.order)
	sort.Strings(names)
	return names
}

// Map returns the tag to entry mapping. The map is shared with the Index.
func (idx *Index) Map() map[string]*TagEntry {
	return idx.entries
}

// Collision lists distinct tags that share one safe name, in first-seen order.
// Their stub files overwrite each other; the last tag listed wins.
type Collision struct {
	SafeName string
	Tags     []string
}

// Collisions reports every safe name claimed by more than one tag.
func (idx *Index) Collisions() []Collision {
	bySafe := make(map[string][]string)
	var safeOrder []string
	for _, tag := range idx.order {
		safe := idx.entries[tag].SafeName
		if _, ok := bySafe[safe]; !ok {
			safeOrder = append(safeOrder, safe)
		}
		bySafe[safe] = append(bySafe[safe], tag)
	}

	var out []Collision
	for _, safe := range safeOrder {
		if tags := bySafe[safe]; len(tags) > 1 {
			out = append(out, Collision{SafeName: safe, Tags: tags})
		}
	}
	return out
}

// Build sorts each bookmark's tags in place and aggregates the collection.
func Build(bookmarks []*bookmark.Bookmark) *Index {
	idx := New()
	for _, bm := range bookmarks {
		sort.Strings(bm.Tags)
		for _, tag := range bm.Tags {
			idx.Add(tag, bm)
		}
	}
	return idx
}

// SafeName derives the file and URL safe form of a tag: spaces become
// underscores, diacritics are stripped and any remaining non-ASCII is dropped.
func SafeName(tag string) string {
	name := strings.ReplaceAll(tag, " ", "_")
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isNonASCII)))
	safe, _, err := transform.String(t, name)
	if err != nil {
		return asciiOnly(norm.NFD.String(name))
	}
	return safe
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if isNonASCII(r) {
			return -1
		}
		return r
	}, s)
}
