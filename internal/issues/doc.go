// Package issues aggregates GitHub issues across locally checked-out projects.
//
// Service drives the discovery pipeline: the projects locator yields remote
// candidates, each origin URL resolves to an owner/repo slug, the injected
// fetcher queries the GitHub CLI, and the normalizer maps raw records into
// canonical Issue values. The result is one flat ordered sequence spanning
// every discovered repository.
package issues
