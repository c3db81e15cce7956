package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/issuescout/internal/execshell"
	"github.com/temirov/issuescout/internal/ui"
)

func issueFetchCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name:    execshell.CommandGitHub,
		Details: execshell.CommandDetails{Arguments: []string{"api", "repos/octocat/hello-world/issues"}},
	}
}

func TestConsoleCommandEventLogger(testInstance *testing.T) {
	observedCore, observedLogs := observer.New(zap.InfoLevel)
	eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observedCore))

	eventLogger.CommandStarted(issueFetchCommand())
	eventLogger.CommandCompleted(issueFetchCommand(), execshell.ExecutionResult{ExitCode: 0})
	eventLogger.CommandCompleted(issueFetchCommand(), execshell.ExecutionResult{ExitCode: 1, StandardError: "gh: Not Found (HTTP 404)"})
	eventLogger.CommandExecutionFailed(issueFetchCommand(), errors.New("executable file not found"))

	loggedEntries := observedLogs.All()
	require.Len(testInstance, loggedEntries, 4)

	require.Equal(testInstance, zap.InfoLevel, loggedEntries[0].Level)
	require.Equal(testInstance, "Fetching issues for octocat/hello-world", loggedEntries[0].Message)

	require.Equal(testInstance, zap.InfoLevel, loggedEntries[1].Level)
	require.Equal(testInstance, "Fetched issues for octocat/hello-world", loggedEntries[1].Message)

	require.Equal(testInstance, zap.WarnLevel, loggedEntries[2].Level)
	require.Contains(testInstance, loggedEntries[2].Message, "Failed to fetch issues for octocat/hello-world")

	require.Equal(testInstance, zap.ErrorLevel, loggedEntries[3].Level)
	require.Contains(testInstance, loggedEntries[3].Message, "Unable to fetch issues for octocat/hello-world")
}

func TestConsoleCommandEventLoggerWithNilLogger(testInstance *testing.T) {
	eventLogger := ui.NewConsoleCommandEventLogger(nil)
	require.NotNil(testInstance, eventLogger)

	eventLogger.CommandStarted(issueFetchCommand())
	eventLogger.CommandCompleted(issueFetchCommand(), execshell.ExecutionResult{})
	eventLogger.CommandExecutionFailed(issueFetchCommand(), errors.New("failure"))
}
