package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every environment variable bookmarkgen reads.
const EnvPrefix = "BOOKMARKGEN_"

// Environment variables backing the command-line flags.
const (
	EnvBookmarksFile = EnvPrefix + "BOOKMARKS_FILENAME"
	EnvIndexFile     = EnvPrefix + "BOOKMARKS_BY_TAGS_FILENAME"
	EnvTagsDir       = EnvPrefix + "TAGS_DIRECTORY"
	EnvDebug         = EnvPrefix + "DEBUG"
)

// Settings holds the resolved inputs of one run.
type Settings struct {
	BookmarksFile string
	IndexFile     string
	TagsDir       string
	Debug         bool
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv fills every empty field from the environment.
// Flags always win; Debug is only ever switched on.
func (s *Settings) ApplyEnv(lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	fill := func(field *string, key string) {
		if *field != "" {
			return
		}
		if v, ok := lookup(key); ok {
			*field = strings.TrimSpace(v)
		}
	}
	fill(&s.BookmarksFile, EnvBookmarksFile)
	fill(&s.IndexFile, EnvIndexFile)
	fill(&s.TagsDir, EnvTagsDir)

	if !s.Debug {
		if v, ok := lookup(EnvDebug); ok {
			debug, err := strconv.ParseBool(strings.TrimSpace(v))
			s.Debug = err == nil && debug
		}
	}
}

// Missing returns the flag names whose values are still empty.
func (s *Settings) Missing() []string {
	var missing []string
	if s.BookmarksFile == "" {
		missing = append(missing, "--bookmarks_filename")
	}
	if s.IndexFile == "" {
		missing = append(missing, "--bookmarks_by_tags_filename")
	}
	if s.TagsDir == "" {
		missing = append(missing, "--tags_directory")
	}
	return missing
}
