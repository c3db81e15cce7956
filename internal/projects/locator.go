package projects

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
)

const (
	originRemoteNameConstant            = "origin"
	githubHostSubstringConstant         = "github.com"
	discoveryIOErrorTemplateConstant    = "unable to read projects directory %s: %s"
	discoveryIOErrorNoCauseTemplateText = "unable to read projects directory %s"
)

// RemoteCandidate pairs a local repository path with its discovered GitHub remote URL.
type RemoteCandidate struct {
	Path      string
	RemoteURL string
}

// DiscoveryIOError indicates the projects directory listing could not be read.
type DiscoveryIOError struct {
	Root  string
	Cause error
}

// Error describes the listing failure.
func (discoveryError DiscoveryIOError) Error() string {
	if discoveryError.Cause == nil {
		return fmt.Sprintf(discoveryIOErrorNoCauseTemplateText, discoveryError.Root)
	}
	return fmt.Sprintf(discoveryIOErrorTemplateConstant, discoveryError.Root, discoveryError.Cause)
}

// Unwrap exposes the underlying filesystem error.
func (discoveryError DiscoveryIOError) Unwrap() error {
	return discoveryError.Cause
}

// Locator discovers GitHub-remote repositories among the immediate children of a root directory.
type Locator struct{}

// NewLocator constructs a repository locator backed by go-git.
func NewLocator() *Locator {
	return &Locator{}
}

// DiscoverRemoteCandidates enumerates immediate subdirectories of the root and
// returns one RemoteCandidate per repository whose origin remote points at GitHub.
//
// A missing root yields an empty sequence rather than an error; any other
// failure to read the listing is surfaced as a DiscoveryIOError.
func (locator *Locator) DiscoverRemoteCandidates(rootPath string) ([]RemoteCandidate, error) {
	directoryEntries, listingError := os.ReadDir(rootPath)
	if listingError != nil {
		if errors.Is(listingError, fs.ErrNotExist) {
			return []RemoteCandidate{}, nil
		}
		return nil, DiscoveryIOError{Root: rootPath, Cause: listingError}
	}

	remoteCandidates := make([]RemoteCandidate, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if !directoryEntry.IsDir() {
			continue
		}

		candidatePath := filepath.Join(rootPath, directoryEntry.Name())
		remoteURL, remoteAvailable := locator.githubRemoteURL(candidatePath)
		if !remoteAvailable {
			continue
		}

		remoteCandidates = append(remoteCandidates, RemoteCandidate{Path: candidatePath, RemoteURL: remoteURL})
	}

	return remoteCandidates, nil
}

// githubRemoteURL resolves the origin remote URL of the repository at the path.
// Every filtering rule returns early so a directory that is not a repository,
// lacks an origin remote, carries no URL, or points away from GitHub is skipped.
func (locator *Locator) githubRemoteURL(repositoryPath string) (string, bool) {
	repository, openError := git.PlainOpen(repositoryPath)
	if openError != nil {
		return "", false
	}

	remoteURL, urlAvailable := originRemoteURL(repository)
	if !urlAvailable {
		return "", false
	}

	if !isGitHubRemoteURL(remoteURL) {
		return "", false
	}

	return remoteURL, true
}

// originRemoteURL extracts the first configured URL of the origin remote.
func originRemoteURL(repository *git.Repository) (string, bool) {
	originRemote, remoteError := repository.Remote(originRemoteNameConstant)
	if remoteError != nil {
		return "", false
	}

	configuredURLs := originRemote.Config().URLs
	if len(configuredURLs) == 0 {
		return "", false
	}

	return configuredURLs[0], true
}

// isGitHubRemoteURL reports whether the URL references the GitHub host.
func isGitHubRemoteURL(remoteURL string) bool {
	return strings.Contains(remoteURL, githubHostSubstringConstant)
}
