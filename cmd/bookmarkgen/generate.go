package main

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/bookmarkgen/internal/bookmark"
	"github.com/gorewood/bookmarkgen/internal/config"
	"github.com/gorewood/bookmarkgen/internal/envfile"
	"github.com/gorewood/bookmarkgen/internal/export"
	"github.com/gorewood/bookmarkgen/internal/logging"
	"github.com/gorewood/bookmarkgen/internal/output"
	"github.com/gorewood/bookmarkgen/internal/pipeline"
)

// generateFlags holds the raw flag values of the root command.
type generateFlags struct {
	bookmarksFile string
	indexFile     string
	tagsDir       string
	debug         bool
	json          bool
	color         string
}

// now is replaced in tests to pin the stub date.
var now = time.Now

// runGenerate resolves settings, runs the pipeline and reports the outcome.
func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	out := cmd.OutOrStdout()
	printer := output.NewPrinter(out, flags.json, output.ResolveColorMode(flags.color, output.IsTTY(out))).
		WithStderr(cmd.ErrOrStderr())

	loadEnvFiles(printer)

	settings := config.Settings{
		BookmarksFile: flags.bookmarksFile,
		IndexFile:     flags.indexFile,
		TagsDir:       flags.tagsDir,
		Debug:         flags.debug,
	}
	settings.ApplyEnv(nil)

	if missing := settings.Missing(); len(missing) > 0 {
		err := output.NewUserError("missing required flag(s): " + strings.Join(missing, ", "))
		printer.Error(err)
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), logging.ConfigFromEnv(settings.Debug))

	result, err := pipeline.Run(pipeline.Options{
		BookmarksFile: settings.BookmarksFile,
		IndexFile:     settings.IndexFile,
		TagsDir:       settings.TagsDir,
		Now:           now,
		Logger:        &logger,
	})
	if err != nil {
		exitErr := classifyError(err)
		printer.Error(exitErr)
		return exitErr
	}

	return printSummary(printer, result)
}

// loadEnvFiles applies env files in priority order. Variables already set,
// including ones set by an earlier file, are never overwritten.
func loadEnvFiles(printer *output.Printer) {
	for _, path := range config.EnvFiles() {
		if _, err := envfile.Load(path); err != nil {
			printer.Warn("%v", err)
		}
	}
}

// classifyError maps pipeline failures onto CLI exit errors.
func classifyError(err error) *output.ExitError {
	var parseErr *bookmark.ParseError
	if errors.As(err, &parseErr) {
		return output.NewInputError("reading bookmarks", err)
	}

	var writeErr *export.WriteError
	if errors.As(err, &writeErr) {
		return output.NewOutputError("writing output", err)
	}

	return output.NewUserError(err.Error())
}

// printSummary reports what the run produced.
func printSummary(printer *output.Printer, result *pipeline.Result) error {
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"bookmarks":      result.Bookmarks,
			"tags":           result.Tags,
			"duplicates":     len(result.Duplicates),
			"collisions":     len(result.Collisions),
			"index_file":     result.IndexFile,
			"tags_directory": result.TagsDir,
			"stubs_removed":  len(result.StubsRemoved),
			"stubs_written":  len(result.StubsWritten),
		})
	}

	printer.Section("Bookmarks by tags")
	printer.KeyValue("Bookmarks", strconv.Itoa(result.Bookmarks))
	printer.KeyValue("Tags", strconv.Itoa(result.Tags))
	printer.KeyValue("Repeated", strconv.Itoa(len(result.Duplicates)))
	printer.KeyValue("Mapping", result.IndexFile)

	printer.Section("Tag stubs")
	printer.KeyValue("Directory", result.TagsDir)
	printer.KeyValue("Removed", strconv.Itoa(len(result.StubsRemoved)))
	printer.KeyValue("Written", strconv.Itoa(len(result.StubsWritten)))
	if len(result.Collisions) > 0 {
		printer.KeyValue("Collisions", strconv.Itoa(len(result.Collisions)))
		names := make([]string, 0, len(result.Collisions))
		for _, c := range result.Collisions {
			names = append(names, c.SafeName+": "+strings.Join(c.Tags, ", "))
		}
		printer.List(names)
	}
	return nil
}
