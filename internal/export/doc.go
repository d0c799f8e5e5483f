// Package export writes the artifacts consumed by the static-site generator.
//
// Two outputs are produced from a tag index:
//
//   - the exchange mapping: one JSON object keyed by tag name, keys sorted,
//     each value {"bookmarks": [...], "name": ..., "safe_name": ...}
//   - tag stubs: one Markdown file per tag, named <safe_name>.md, holding
//     only YAML front matter
//
// Example stub:
//
//	---
//	layout: tag
//	date: "2026-01-15"
//	title: Bookmarks for tag Café Life
//	name: Café Life
//	---
//
// The stub directory is owned by the generator: every *.md file in it is
// removed before the current stubs are written.
//
// All I/O failures are returned as *WriteError.
package export
