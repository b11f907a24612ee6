// Package cli is the command-line adapter. It parses arguments with cobra,
// hands the request to the application service, and maps errors to
// diagnostics and exit codes.
//
// Usage:
//
//	tuxsay [--help | --fortune | <message>] [<character>]
//
// Rendered output goes to stdout. Diagnostics go to stderr as
// "error: <message>", followed by the usage text when the arguments
// themselves were wrong. The exit code is 0 on success and 1 on any error.
package cli
