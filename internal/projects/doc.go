// Package projects locates Git repositories with GitHub remotes beneath a
// projects directory.
//
// The locator inspects only the immediate children of the configured root and
// pairs each qualifying repository with its origin remote URL; everything that
// is not a GitHub-remote repository is skipped silently so discovery stays
// best-effort.
package projects
