package execshell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/issuescout/internal/execshell"
)

const (
	testFormatterRepositorySlugConstant       = "octocat/hello-world"
	testIssueFetchStartCaseNameConstant       = "issue_fetch_start"
	testIssueFetchSuccessCaseNameConstant     = "issue_fetch_success"
	testIssueFetchFailureCaseNameConstant     = "issue_fetch_failure"
	testIssueFetchExecutionFailureCaseName    = "issue_fetch_execution_failure"
	testGenericStartCaseNameConstant          = "generic_start"
	testGenericSuccessCaseNameConstant        = "generic_success"
	testGenericFailureCaseNameConstant        = "generic_failure"
	testGenericWorkingDirectoryCaseName       = "generic_with_working_directory"
	testNonIssueEndpointFallbackCaseName      = "non_issue_endpoint_uses_generic_message"
)

func issueFetchCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGitHub,
		Details: execshell.CommandDetails{
			Arguments: []string{"api", "repos/" + testFormatterRepositorySlugConstant + "/issues"},
		},
	}
}

func TestCommandMessageFormatterIssueFetchMessages(testInstance *testing.T) {
	formatter := execshell.CommandMessageFormatter{}
	command := issueFetchCommand()

	testInstance.Run(testIssueFetchStartCaseNameConstant, func(testInstance *testing.T) {
		require.Equal(testInstance, "Fetching issues for octocat/hello-world", formatter.BuildStartedMessage(command))
	})

	testInstance.Run(testIssueFetchSuccessCaseNameConstant, func(testInstance *testing.T) {
		require.Equal(testInstance, "Fetched issues for octocat/hello-world", formatter.BuildSuccessMessage(command))
	})

	testInstance.Run(testIssueFetchFailureCaseNameConstant, func(testInstance *testing.T) {
		failureMessage := formatter.BuildFailureMessage(command, execshell.ExecutionResult{ExitCode: 1, StandardError: "gh: Not Found (HTTP 404)\n"})
		require.Equal(testInstance, "Failed to fetch issues for octocat/hello-world (exit code 1: gh: Not Found (HTTP 404))", failureMessage)
	})

	testInstance.Run(testIssueFetchExecutionFailureCaseName, func(testInstance *testing.T) {
		failureMessage := formatter.BuildExecutionFailureMessage(command, errors.New("executable file not found"))
		require.Equal(testInstance, "Unable to fetch issues for octocat/hello-world: executable file not found", failureMessage)
	})
}

func TestCommandMessageFormatterGenericMessages(testInstance *testing.T) {
	formatter := execshell.CommandMessageFormatter{}
	command := execshell.ShellCommand{
		Name:    execshell.CommandGitHub,
		Details: execshell.CommandDetails{Arguments: []string{"auth", "status"}},
	}

	testInstance.Run(testGenericStartCaseNameConstant, func(testInstance *testing.T) {
		require.Equal(testInstance, "Running gh auth status", formatter.BuildStartedMessage(command))
	})

	testInstance.Run(testGenericSuccessCaseNameConstant, func(testInstance *testing.T) {
		require.Equal(testInstance, "Completed gh auth status", formatter.BuildSuccessMessage(command))
	})

	testInstance.Run(testGenericFailureCaseNameConstant, func(testInstance *testing.T) {
		failureMessage := formatter.BuildFailureMessage(command, execshell.ExecutionResult{ExitCode: 2, StandardError: "not logged in"})
		require.Equal(testInstance, "gh auth status failed with exit code 2: not logged in", failureMessage)
	})

	testInstance.Run(testGenericWorkingDirectoryCaseName, func(testInstance *testing.T) {
		commandWithDirectory := command
		commandWithDirectory.Details.WorkingDirectory = "/workspace"
		require.Equal(testInstance, "Running gh auth status (in /workspace)", formatter.BuildStartedMessage(commandWithDirectory))
	})

	testInstance.Run(testNonIssueEndpointFallbackCaseName, func(testInstance *testing.T) {
		pullsCommand := execshell.ShellCommand{
			Name:    execshell.CommandGitHub,
			Details: execshell.CommandDetails{Arguments: []string{"api", "repos/octocat/hello-world/pulls"}},
		}
		require.Equal(testInstance, "Running gh api repos/octocat/hello-world/pulls", formatter.BuildStartedMessage(pullsCommand))
	})
}
