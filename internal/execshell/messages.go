package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	messageStandardErrorSuffixTemplate      = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
)

const (
	githubAPISubcommandNameConstant         = "api"
	issuesEndpointPrefixConstant            = "repos/"
	issuesEndpointSuffixConstant            = "/issues"
	issueFetchStartTemplateConstant         = "Fetching issues for %s"
	issueFetchSuccessTemplateConstant       = "Fetched issues for %s"
	issueFetchFailureTemplateConstant       = "Failed to fetch issues for %s (exit code %d%s)"
	issueFetchExecutionFailureTemplateConst = "Unable to fetch issues for %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name == CommandGitHub {
		if repositorySlug, isIssueFetch := formatter.issueFetchRepository(command.Details.Arguments); isIssueFetch {
			return formatter.describeIssueFetchMessage(repositorySlug, result, failure, stage)
		}
	}
	return formatter.buildGenericMessage(command, result, failure, stage)
}

// issueFetchRepository recognizes `gh api repos/<owner>/<repo>/issues` invocations.
func (formatter CommandMessageFormatter) issueFetchRepository(arguments []string) (string, bool) {
	if len(arguments) < 2 {
		return emptyStringConstant, false
	}
	if strings.TrimSpace(arguments[0]) != githubAPISubcommandNameConstant {
		return emptyStringConstant, false
	}

	endpoint := strings.TrimSpace(arguments[1])
	if !strings.HasPrefix(endpoint, issuesEndpointPrefixConstant) || !strings.HasSuffix(endpoint, issuesEndpointSuffixConstant) {
		return emptyStringConstant, false
	}

	repositorySlug := strings.TrimSuffix(strings.TrimPrefix(endpoint, issuesEndpointPrefixConstant), issuesEndpointSuffixConstant)
	if len(repositorySlug) == 0 {
		return emptyStringConstant, false
	}
	return repositorySlug, true
}

func (formatter CommandMessageFormatter) describeIssueFetchMessage(repositorySlug string, result ExecutionResult, failure error, stage messageStage) string {
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(issueFetchStartTemplateConstant, repositorySlug)
	case messageStageSuccess:
		return fmt.Sprintf(issueFetchSuccessTemplateConstant, repositorySlug)
	case messageStageFailure:
		return fmt.Sprintf(issueFetchFailureTemplateConstant, repositorySlug, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(issueFetchExecutionFailureTemplateConst, repositorySlug, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(messageStandardErrorSuffixTemplate, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}
