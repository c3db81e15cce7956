// Package githubcli invokes the authenticated GitHub CLI through execshell.
//
// Client exposes the issue listing endpoint used by the aggregation pipeline
// and a generic passthrough for arbitrary gh invocations. Non-zero exit codes
// are always surfaced as application-level errors, never process crashes.
package githubcli
