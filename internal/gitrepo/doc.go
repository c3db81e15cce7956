// Package gitrepo contains helpers for interpreting Git remote URLs.
package gitrepo
