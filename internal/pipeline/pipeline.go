// Package pipeline runs the bookmark to site-data transform.
package pipeline

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/gorewood/bookmarkgen/internal/bookmark"
	"github.com/gorewood/bookmarkgen/internal/export"
	"github.com/gorewood/bookmarkgen/internal/logging"
	"github.com/gorewood/bookmarkgen/internal/tagindex"
)

// Options configures one run.
type Options struct {
	BookmarksFile string
	IndexFile     string
	TagsDir       string

	// Now supplies the stub date. Defaults to time.Now.
	Now func() time.Time

	// Logger receives warnings and debug tracing. Nil discards them.
	Logger *zerolog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Bookmarks    int
	Tags         int
	Duplicates   []bookmark.Duplicate
	Collisions   []tagindex.Collision
	StubsRemoved []string
	StubsWritten []string
	IndexFile    string
	TagsDir      string
}

// Run loads the bookmarks, reports repeated URLs, builds the tag index and
// writes both artifacts. The first fatal error stops the run; output written
// before it is left in place.
func Run(opts Options) (*Result, error) {
	if opts.BookmarksFile == "" || opts.IndexFile == "" || opts.TagsDir == "" {
		return nil, errors.New("bookmarks file, index file and tags directory are required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := logging.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	bookmarks, err := bookmark.Load(opts.BookmarksFile)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", opts.BookmarksFile).Int("count", len(bookmarks)).Msg("loaded bookmarks")

	dups := bookmark.FindDuplicates(bookmarks)
	for _, dup := range dups {
		log.Warn().
			Str("url", dup.Bookmark.URL).
			Int("index", dup.Index).
			Int("first_index", dup.FirstIndex).
			Interface("bookmark", dup.Bookmark).
			Msg("repeated bookmark")
	}

	idx := tagindex.Build(bookmarks)
	log.Debug().Int("count", idx.Len()).Strs("tags", idx.Names()).Msg("built tag index")

	collisions := idx.Collisions()
	for _, c := range collisions {
		log.Warn().
			Str("safe_name", c.SafeName).
			Strs("tags", c.Tags).
			Str("winner", c.Tags[len(c.Tags)-1]).
			Msg("tag stub collision")
	}

	if err := export.WriteIndexJSON(idx, opts.IndexFile); err != nil {
		return nil, err
	}
	log.Debug().Str("path", opts.IndexFile).Msg("wrote bookmarks by tags")

	report, err := export.RegenerateStubs(idx, opts.TagsDir, now())
	for _, path := range report.Removed {
		log.Debug().Str("path", path).Msg("removed stub")
	}
	for _, path := range report.Written {
		log.Debug().Str("path", path).Msg("wrote stub")
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Bookmarks:    len(bookmarks),
		Tags:         idx.Len(),
		Duplicates:   dups,
		Collisions:   collisions,
		StubsRemoved: report.Removed,
		StubsWritten: report.Written,
		IndexFile:    opts.IndexFile,
		TagsDir:      opts.TagsDir,
	}, nil
}
