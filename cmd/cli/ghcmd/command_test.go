package ghcmd_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/issuescout/cmd/cli/ghcmd"
	"github.com/temirov/issuescout/internal/execshell"
	"github.com/temirov/issuescout/internal/githubcli"
)

const (
	testPassthroughSuccessCaseNameConstant    = "relays_standard_output"
	testPassthroughFailureCaseNameConstant    = "relays_standard_error_on_failure"
	testPassthroughNoArgumentsCaseConstant    = "rejects_missing_arguments"
	testPassthroughArgumentVectorCaseConstant = "forwards_argument_vector"
)

type stubPassthroughExecutor struct {
	result          execshell.ExecutionResult
	executionError  error
	recordedDetails []execshell.CommandDetails
}

func (executor *stubPassthroughExecutor) ExecuteGitHubCLI(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.executionError != nil {
		return execshell.ExecutionResult{}, executor.executionError
	}
	return executor.result, nil
}

func buildPassthroughCommand(testInstance *testing.T, executor githubcli.GitHubCommandExecutor) (*ghcmd.CommandBuilder, *bytes.Buffer) {
	testInstance.Helper()

	commandBuilder := &ghcmd.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return zap.NewNop()
		},
		Executor: executor,
	}

	return commandBuilder, &bytes.Buffer{}
}

func TestPassthroughCommand(testInstance *testing.T) {
	testInstance.Run(testPassthroughSuccessCaseNameConstant, func(testInstance *testing.T) {
		executor := &stubPassthroughExecutor{result: execshell.ExecutionResult{StandardOutput: "gh version 2.40.0\n"}}
		commandBuilder, outputBuffer := buildPassthroughCommand(testInstance, executor)

		command, buildError := commandBuilder.Build()
		require.NoError(testInstance, buildError)
		command.SetOut(outputBuffer)
		command.SetErr(outputBuffer)
		command.SetContext(context.Background())
		command.SetArgs([]string{"version"})

		executionError := command.Execute()
		require.NoError(testInstance, executionError)
		require.Equal(testInstance, "gh version 2.40.0\n", outputBuffer.String())
	})

	testInstance.Run(testPassthroughFailureCaseNameConstant, func(testInstance *testing.T) {
		executor := &stubPassthroughExecutor{executionError: execshell.CommandFailedError{
			Command: execshell.ShellCommand{Name: execshell.CommandGitHub},
			Result:  execshell.ExecutionResult{ExitCode: 4, StandardError: "gh: To get started with GitHub CLI, please run: gh auth login\n"},
		}}
		commandBuilder, outputBuffer := buildPassthroughCommand(testInstance, executor)

		command, buildError := commandBuilder.Build()
		require.NoError(testInstance, buildError)
		command.SetOut(outputBuffer)
		command.SetErr(outputBuffer)
		command.SetContext(context.Background())
		command.SetArgs([]string{"api", "user"})

		executionError := command.Execute()
		require.Error(testInstance, executionError)
		require.IsType(testInstance, githubcli.PassthroughCommandError{}, executionError)
		require.Equal(testInstance, "gh: To get started with GitHub CLI, please run: gh auth login", executionError.Error())
	})

	testInstance.Run(testPassthroughNoArgumentsCaseConstant, func(testInstance *testing.T) {
		executor := &stubPassthroughExecutor{}
		commandBuilder, outputBuffer := buildPassthroughCommand(testInstance, executor)

		command, buildError := commandBuilder.Build()
		require.NoError(testInstance, buildError)
		command.SetOut(outputBuffer)
		command.SetErr(outputBuffer)
		command.SetContext(context.Background())
		command.SetArgs([]string{})

		executionError := command.Execute()
		require.Error(testInstance, executionError)
		require.Empty(testInstance, executor.recordedDetails)
	})

	testInstance.Run(testPassthroughArgumentVectorCaseConstant, func(testInstance *testing.T) {
		executor := &stubPassthroughExecutor{result: execshell.ExecutionResult{StandardOutput: "{}"}}
		commandBuilder, outputBuffer := buildPassthroughCommand(testInstance, executor)

		command, buildError := commandBuilder.Build()
		require.NoError(testInstance, buildError)
		command.SetOut(outputBuffer)
		command.SetErr(outputBuffer)
		command.SetContext(context.Background())
		command.SetArgs([]string{"api", "repos/octocat/hello-world", "--jq", ".name"})

		executionError := command.Execute()
		require.NoError(testInstance, executionError)
		require.Len(testInstance, executor.recordedDetails, 1)
		require.Equal(testInstance, []string{"api", "repos/octocat/hello-world", "--jq", ".name"}, executor.recordedDetails[0].Arguments)
	})
}
