package bookmark

import "fmt"

// Duplicate is a bookmark whose URL was already seen earlier in the collection.
// Duplicates are diagnostic only; the record stays in the dataset.
type Duplicate struct {
	Bookmark   *Bookmark
	Index      int
	FirstIndex int
}

// String describes the repeated record.
func (d Duplicate) String() string {
	return fmt.Sprintf("repeated bookmark %s at #%d (first seen at #%d)", d.Bookmark.URL, d.Index+1, d.FirstIndex+1)
}

// FindDuplicates returns one Duplicate for every record whose URL repeats an
// earlier record, in collection order.
func FindDuplicates(bookmarks []*Bookmark) []Duplicate {
	seen := make(map[string]int, len(bookmarks))
	var dups []Duplicate
	for i, bm := range bookmarks {
		if first, ok := seen[bm.URL]; ok {
			dups = append(dups, Duplicate{Bookmark: bm, Index: i, FirstIndex: first})
			continue
		}
		seen[bm.URL] = i
	}
	return dups
}
