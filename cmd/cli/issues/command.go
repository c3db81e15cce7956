// Package issues wires the issue aggregation pipeline into a cobra command.
package issues

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/issuescout/internal/execshell"
	"github.com/temirov/issuescout/internal/githubcli"
	issueservice "github.com/temirov/issuescout/internal/issues"
	"github.com/temirov/issuescout/internal/projects"
	"github.com/temirov/issuescout/internal/ui"
	pathutils "github.com/temirov/issuescout/internal/utils/path"
)

const (
	commandUseConstant                      = "issues"
	commandShortDescriptionConstant         = "List open issues across every GitHub project under the projects root"
	commandLongDescriptionConstant          = "issues scans the projects root for Git repositories with GitHub origin remotes and aggregates their issues through the GitHub CLI."
	rootFlagNameConstant                    = "root"
	rootFlagDescriptionConstant             = "Projects root directory to scan for repositories"
	outputFlagNameConstant                  = "output"
	outputFlagDescriptionConstant           = "Output format (json or text)"
	loggerNotConfiguredMessageConstant      = "logger not configured"
	unsupportedOutputFormatTemplateConstant = "unsupported output format: %s"
	textIssueLineTemplateConstant           = "%s #%d [%s] %s\n"
	textIssueURLLineTemplateConstant        = "    %s\n"
	textIssueLabelsLineTemplateConstant     = "    labels: %s\n"
	textLabelSeparatorConstant              = ", "
	jsonOutputIndentConstant                = "  "
	trailingNewlineConstant                 = "\n"
	encodedIssuesMarshalTemplateConstant    = "unable to encode issues: %w"
	renderedOutputWriteTemplateConstant     = "unable to write output: %w"
)

// LoggerProvider supplies the logger used by the command at execution time.
type LoggerProvider func() *zap.Logger

// HumanReadableLoggingProvider reports whether console-style logging is active.
type HumanReadableLoggingProvider func() bool

// CommandBuilder assembles the issues command with its collaborators.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Locator                      issueservice.RemoteCandidateLocator
	Fetcher                      issueservice.IssueFetcher
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the cobra command for aggregating issues.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	if builder.LoggerProvider == nil {
		return nil, errors.New(loggerNotConfiguredMessageConstant)
	}

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(rootFlagNameConstant, "", rootFlagDescriptionConstant)
	command.Flags().String(outputFlagNameConstant, "", outputFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	rootFlagValue, _ := command.Flags().GetString(rootFlagNameConstant)
	if len(strings.TrimSpace(rootFlagValue)) > 0 {
		configuration.ProjectsRoot = strings.TrimSpace(rootFlagValue)
	}

	outputFlagValue, _ := command.Flags().GetString(outputFlagNameConstant)
	if len(strings.TrimSpace(outputFlagValue)) > 0 {
		configuration.Output = strings.TrimSpace(outputFlagValue)
	}
	configuration = configuration.sanitize()

	outputFormat := OutputFormat(configuration.Output)
	if outputFormat != OutputFormatJSON && outputFormat != OutputFormatText {
		return fmt.Errorf(unsupportedOutputFormatTemplateConstant, configuration.Output)
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		logger = zap.NewNop()
	}

	issueFetcher, fetcherError := builder.resolveFetcher(logger)
	if fetcherError != nil {
		return fetcherError
	}

	remoteLocator := builder.Locator
	if remoteLocator == nil {
		remoteLocator = projects.NewLocator()
	}

	aggregationService, serviceError := issueservice.NewService(remoteLocator, issueFetcher, logger)
	if serviceError != nil {
		return serviceError
	}

	projectsRoot := pathutils.NewHomeExpander().Expand(configuration.ProjectsRoot)

	aggregatedIssues, listError := aggregationService.ListIssues(command.Context(), projectsRoot)
	if listError != nil {
		return listError
	}

	return renderIssues(command.OutOrStdout(), outputFormat, aggregatedIssues)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}.sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveFetcher(logger *zap.Logger) (issueservice.IssueFetcher, error) {
	if builder.Fetcher != nil {
		return builder.Fetcher, nil
	}

	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}

	shellExecutor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), humanReadableLogging)
	if executorError != nil {
		return nil, executorError
	}
	if humanReadableLogging {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}

	return githubcli.NewClient(shellExecutor)
}

func renderIssues(outputWriter io.Writer, outputFormat OutputFormat, aggregatedIssues []issueservice.Issue) error {
	if outputFormat == OutputFormatText {
		return renderIssuesAsText(outputWriter, aggregatedIssues)
	}
	return renderIssuesAsJSON(outputWriter, aggregatedIssues)
}

func renderIssuesAsJSON(outputWriter io.Writer, aggregatedIssues []issueservice.Issue) error {
	encodedIssues, marshalError := json.MarshalIndent(aggregatedIssues, "", jsonOutputIndentConstant)
	if marshalError != nil {
		return fmt.Errorf(encodedIssuesMarshalTemplateConstant, marshalError)
	}

	_, writeError := fmt.Fprint(outputWriter, string(encodedIssues)+trailingNewlineConstant)
	if writeError != nil {
		return fmt.Errorf(renderedOutputWriteTemplateConstant, writeError)
	}
	return nil
}

func renderIssuesAsText(outputWriter io.Writer, aggregatedIssues []issueservice.Issue) error {
	for _, aggregatedIssue := range aggregatedIssues {
		_, writeError := fmt.Fprintf(
			outputWriter,
			textIssueLineTemplateConstant,
			aggregatedIssue.Repository,
			aggregatedIssue.Number,
			aggregatedIssue.State,
			aggregatedIssue.Title,
		)
		if writeError != nil {
			return fmt.Errorf(renderedOutputWriteTemplateConstant, writeError)
		}

		if len(aggregatedIssue.URL) > 0 {
			_, writeError = fmt.Fprintf(outputWriter, textIssueURLLineTemplateConstant, aggregatedIssue.URL)
			if writeError != nil {
				return fmt.Errorf(renderedOutputWriteTemplateConstant, writeError)
			}
		}

		if len(aggregatedIssue.Labels) > 0 {
			_, writeError = fmt.Fprintf(
				outputWriter,
				textIssueLabelsLineTemplateConstant,
				strings.Join(aggregatedIssue.Labels, textLabelSeparatorConstant),
			)
			if writeError != nil {
				return fmt.Errorf(renderedOutputWriteTemplateConstant, writeError)
			}
		}
	}
	return nil
}
