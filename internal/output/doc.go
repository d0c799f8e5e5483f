// Package output provides structured output handling for the bookmarkgen CLI.
//
// # Printer
//
// The Printer reports the run summary and fatal errors:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Section("Bookmarks")
//	printer.KeyValue("Tags", "42")
//	printer.Error(err)
//
// With --json the summary is a single JSON object and errors are
// {"error": "message", "code": N}.
//
// Non-fatal warnings (repeated bookmarks, stub collisions) are not printed
// here; they go through the zerolog logger on stderr.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Missing or invalid flags
//	output.ExitInputError  // 2: Bookmarks document unreadable or malformed
//	output.ExitOutputError // 3: Exchange mapping or stub files could not be written
//
// Use NewUserError, NewInputError and NewOutputError to build errors that
// carry these codes; GetExitCode maps any error to a process exit status.
package output
