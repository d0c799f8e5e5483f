// Package main provides the entry point for the bookmarkgen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/bookmarkgen/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportError),
	)
	return output.GetExitCode(err)
}

// reportError prints errors the output.Printer has not already reported,
// such as unknown flags or stray arguments.
func reportError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the bookmarkgen CLI.
func newRootCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "bookmarkgen",
		Short: "Generate tag data and tag pages from a bookmarks file",
		Long: `bookmarkgen turns a YAML bookmark collection into site data.

It writes:
  - a JSON mapping of tag name to {name, safe_name, bookmarks}
  - one Markdown stub per tag (<safe_name>.md) carrying only front matter

Every *.md file in the tags directory is deleted before the stubs are
regenerated. Bookmarks with a repeated url are reported as warnings and kept.

Required paths can also come from BOOKMARKGEN_BOOKMARKS_FILENAME,
BOOKMARKGEN_BOOKMARKS_BY_TAGS_FILENAME and BOOKMARKGEN_TAGS_DIRECTORY, set in
the environment or in .env.local, .env or the config directory's env file.

Example:
  bookmarkgen -b data/bookmarks.yaml -t data/bookmarks_by_tags.json \
    --tags_directory content/bookmarks/tags/`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.bookmarksFile, "bookmarks_filename", "b", "", "Filename with bookmarks (YAML format)")
	cmd.Flags().StringVarP(&flags.indexFile, "bookmarks_by_tags_filename", "t", "", "Filename to output bookmarks by tags mapping (JSON format)")
	cmd.Flags().StringVar(&flags.tagsDir, "tags_directory", "", "Directory to output Markdown tag files")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Print debug information")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Output the run summary in JSON format")
	cmd.Flags().StringVar(&flags.color, "color", "auto", "Color output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	return cmd
}
