package githubcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/temirov/issuescout/internal/execshell"
)

const (
	apiSubcommandConstant                   = "api"
	issuesEndpointTemplateConstant          = "repos/%s/issues"
	repositoryFieldNameConstant             = "repository"
	argumentsFieldNameConstant              = "arguments"
	requiredValueMessageConstant            = "value required"
	executorNotConfiguredMessageConstant    = "github cli executor not configured"
	invalidUTF8OutputMessageConstant        = "standard output is not valid utf-8"
	operationErrorMessageTemplateConstant   = "%s operation failed"
	operationErrorWithCauseTemplateConstant = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant   = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant       = "%s: %s"
	passthroughFailureTemplateConstant      = "gh %s failed with exit code %d"
	listIssuesOperationNameConstant         = OperationName("ListRepositoryIssues")
	runCommandOperationNameConstant         = OperationName("RunCommand")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor GitHubCommandExecutor
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates the CLI output could not be interpreted.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying decoding error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// PassthroughCommandError reports a passthrough invocation that exited non-zero.
//
// The standard error text becomes the error message so callers can relay the
// CLI's own diagnostics without treating the failure as a crash.
type PassthroughCommandError struct {
	Arguments     []string
	StandardError string
	ExitCode      int
}

// Error yields the CLI standard error text, falling back to a generic description.
func (passthroughError PassthroughCommandError) Error() string {
	trimmedStandardError := strings.TrimSpace(passthroughError.StandardError)
	if len(trimmedStandardError) > 0 {
		return trimmedStandardError
	}
	return fmt.Sprintf(passthroughFailureTemplateConstant, strings.Join(passthroughError.Arguments, " "), passthroughError.ExitCode)
}

// NewClient constructs a GitHub CLI client.
func NewClient(executor GitHubCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// ListRepositoryIssues requests the issues collection for an owner/repo slug using gh api.
//
// Only the first page the endpoint returns is consumed; the raw records are
// handed back undecoded so the normalization layer owns field interpretation.
func (client *Client) ListRepositoryIssues(executionContext context.Context, repositorySlug string) ([]json.RawMessage, error) {
	trimmedSlug := strings.TrimSpace(repositorySlug)
	if len(trimmedSlug) == 0 {
		return nil, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			apiSubcommandConstant,
			fmt.Sprintf(issuesEndpointTemplateConstant, trimmedSlug),
		},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return nil, OperationError{Operation: listIssuesOperationNameConstant, Cause: executionError}
	}

	if !utf8.ValidString(executionResult.StandardOutput) {
		return nil, ResponseDecodingError{Operation: listIssuesOperationNameConstant, Cause: errors.New(invalidUTF8OutputMessageConstant)}
	}

	var rawIssueRecords []json.RawMessage
	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &rawIssueRecords)
	if decodingError != nil {
		return nil, ResponseDecodingError{Operation: listIssuesOperationNameConstant, Cause: decodingError}
	}

	return rawIssueRecords, nil
}

// RunCommand executes an arbitrary GitHub CLI argument vector and returns its standard output.
//
// A non-zero exit produces a PassthroughCommandError carrying the standard
// error text; execution-level failures are wrapped as OperationError.
func (client *Client) RunCommand(executionContext context.Context, arguments []string) (string, error) {
	if len(arguments) == 0 {
		return "", InvalidInputError{FieldName: argumentsFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{Arguments: append([]string{}, arguments...)}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		failedError := execshell.CommandFailedError{}
		if errors.As(executionError, &failedError) {
			return "", PassthroughCommandError{
				Arguments:     arguments,
				StandardError: failedError.Result.StandardError,
				ExitCode:      failedError.Result.ExitCode,
			}
		}
		return "", OperationError{Operation: runCommandOperationNameConstant, Cause: executionError}
	}

	return executionResult.StandardOutput, nil
}
