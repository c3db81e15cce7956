package issues

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/issuescout/internal/gitrepo"
	"github.com/temirov/issuescout/internal/projects"
)

const (
	locatorNotConfiguredMessageConstant = "issue service locator not configured"
	fetcherNotConfiguredMessageConstant = "issue service fetcher not configured"
	repositorySkippedLogMessageConstant = "repository issues unavailable"
	logFieldRepositorySlugConstant      = "repository"
	logFieldRepositoryPathConstant      = "path"
)

// RemoteCandidateLocator discovers repositories with GitHub remotes beneath a root.
type RemoteCandidateLocator interface {
	DiscoverRemoteCandidates(rootPath string) ([]projects.RemoteCandidate, error)
}

// IssueFetcher retrieves the raw issue records for an owner/repo slug.
type IssueFetcher interface {
	ListRepositoryIssues(executionContext context.Context, repositorySlug string) ([]json.RawMessage, error)
}

var (
	// ErrLocatorNotConfigured indicates the service was constructed without a locator.
	ErrLocatorNotConfigured = errors.New(locatorNotConfiguredMessageConstant)
	// ErrFetcherNotConfigured indicates the service was constructed without a fetcher.
	ErrFetcherNotConfigured = errors.New(fetcherNotConfiguredMessageConstant)
)

// Service aggregates issues across every repository discovered under a projects root.
type Service struct {
	locator RemoteCandidateLocator
	fetcher IssueFetcher
	logger  *zap.Logger
}

// NewService constructs an aggregation service from the provided collaborators.
func NewService(locator RemoteCandidateLocator, fetcher IssueFetcher, logger *zap.Logger) (*Service, error) {
	if locator == nil {
		return nil, ErrLocatorNotConfigured
	}
	if fetcher == nil {
		return nil, ErrFetcherNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{locator: locator, fetcher: fetcher, logger: logger}, nil
}

// ListIssues runs the full discovery pipeline for the projects root.
//
// Output order is locator order, then raw API order within each repository.
// A malformed GitHub remote URL aborts the whole aggregation; a fetch failure
// for one repository is logged and skipped so the remaining repositories still
// contribute their issues.
func (service *Service) ListIssues(executionContext context.Context, projectsRoot string) ([]Issue, error) {
	remoteCandidates, discoveryError := service.locator.DiscoverRemoteCandidates(projectsRoot)
	if discoveryError != nil {
		return nil, discoveryError
	}

	aggregatedIssues := make([]Issue, 0)
	for _, remoteCandidate := range remoteCandidates {
		repositorySlug, resolutionError := gitrepo.ExtractGitHubSlug(remoteCandidate.RemoteURL)
		if resolutionError != nil {
			return nil, resolutionError
		}

		rawIssueRecords, fetchError := service.fetcher.ListRepositoryIssues(executionContext, repositorySlug)
		if fetchError != nil {
			service.logger.Warn(
				repositorySkippedLogMessageConstant,
				zap.String(logFieldRepositorySlugConstant, repositorySlug),
				zap.String(logFieldRepositoryPathConstant, remoteCandidate.Path),
				zap.Error(fetchError),
			)
			continue
		}

		for _, rawIssueRecord := range rawIssueRecords {
			normalizedIssue, accepted := NormalizeIssueRecord(repositorySlug, rawIssueRecord)
			if !accepted {
				continue
			}
			aggregatedIssues = append(aggregatedIssues, normalizedIssue)
		}
	}

	return aggregatedIssues, nil
}
