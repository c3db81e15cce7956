package gitrepo

import (
	"fmt"
	"strings"
)

const (
	gitSuffixConstant                  = ".git"
	githubHostMarkerConstant           = "github.com/"
	malformedRemoteURLTemplateConstant = "%s: %s"
	missingGitHubMarkerMessageConstant = "remote url does not contain " + githubHostMarkerConstant
)

// MalformedRemoteURLError indicates a remote URL lacking the GitHub host marker.
type MalformedRemoteURLError struct {
	RemoteURL string
}

// Error describes the malformed remote URL.
func (malformedError MalformedRemoteURLError) Error() string {
	return fmt.Sprintf(malformedRemoteURLTemplateConstant, malformedError.RemoteURL, missingGitHubMarkerMessageConstant)
}

// ExtractGitHubSlug derives the owner/repo identifier from a remote URL.
//
// A single trailing ".git" suffix is stripped before locating the
// "github.com/" marker; everything after the marker is returned verbatim
// without further validation. URLs lacking the marker yield a
// MalformedRemoteURLError.
func ExtractGitHubSlug(remoteURL string) (string, error) {
	withoutGitSuffix := strings.TrimSuffix(remoteURL, gitSuffixConstant)

	markerIndex := strings.Index(withoutGitSuffix, githubHostMarkerConstant)
	if markerIndex == -1 {
		return "", MalformedRemoteURLError{RemoteURL: remoteURL}
	}

	return withoutGitSuffix[markerIndex+len(githubHostMarkerConstant):], nil
}
