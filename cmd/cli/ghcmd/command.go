// Package ghcmd exposes a passthrough command that relays argument vectors to the GitHub CLI.
package ghcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/issuescout/internal/execshell"
	"github.com/temirov/issuescout/internal/githubcli"
)

const (
	commandUseConstant                 = "gh [arguments...]"
	commandShortDescriptionConstant    = "Run an arbitrary GitHub CLI command using the local gh authentication"
	commandLongDescriptionConstant     = "gh forwards its arguments verbatim to the GitHub CLI and relays the command's standard output."
	loggerNotConfiguredMessageConstant = "logger not configured"
	argumentsRequiredMessageConstant   = "at least one argument is required"
)

// LoggerProvider supplies the logger used by the command at execution time.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console-style logging is active.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the gh passthrough command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Executor                     githubcli.GitHubCommandExecutor
	HumanReadableLoggingProvider HumanReadableLoggingProvider
}

// Build constructs the cobra command forwarding arguments to the GitHub CLI.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	if builder.LoggerProvider == nil {
		return nil, errors.New(loggerNotConfiguredMessageConstant)
	}

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MinimumNArgs(1),
		RunE:  builder.run,
	}

	// Flags after the first positional argument belong to the GitHub CLI.
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return errors.New(argumentsRequiredMessageConstant)
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		logger = zap.NewNop()
	}

	commandExecutor, executorError := builder.resolveExecutor(logger)
	if executorError != nil {
		return executorError
	}

	githubClient, clientError := githubcli.NewClient(commandExecutor)
	if clientError != nil {
		return clientError
	}

	standardOutput, runError := githubClient.RunCommand(command.Context(), arguments)
	if runError != nil {
		return runError
	}

	_, writeError := fmt.Fprint(command.OutOrStdout(), standardOutput)
	return writeError
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger) (githubcli.GitHubCommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	return execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), humanReadableLogging)
}
