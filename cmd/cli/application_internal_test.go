package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/issuescout/internal/utils"
)

const (
	testInternalConfigFileNameConstant   = "config.yaml"
	testInternalConfigContentConstant    = "common:\n  log_level: warn\n  log_format: console\n"
	testInternalIssuesCommandNameTitle   = "issues"
	testInternalPassthroughCommandTitle  = "gh"
	testInternalHelpOutputMarkerConstant = "Usage:"
)

func TestNewApplicationRegistersSubcommands(testInstance *testing.T) {
	application := NewApplication()
	require.NotNil(testInstance, application.rootCommand)

	registeredCommandNames := map[string]bool{}
	for _, registeredCommand := range application.rootCommand.Commands() {
		registeredCommandNames[registeredCommand.Name()] = true
	}

	require.True(testInstance, registeredCommandNames[testInternalIssuesCommandNameTitle])
	require.True(testInstance, registeredCommandNames[testInternalPassthroughCommandTitle])
}

func TestRootCommandWithoutArgumentsPrintsHelp(testInstance *testing.T) {
	application := NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetArgs([]string{})

	executionError := application.Execute()
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, outputBuffer.String(), testInternalHelpOutputMarkerConstant)
}

func TestInitializeConfigurationAppliesConfigFile(testInstance *testing.T) {
	configurationPath := filepath.Join(testInstance.TempDir(), testInternalConfigFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(testInternalConfigContentConstant), 0o600))

	application := NewApplication()
	application.configurationFilePath = configurationPath

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(testInstance, initializationError)

	require.Equal(testInstance, string(utils.LogLevelWarn), application.configuration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatConsole), application.configuration.Common.LogFormat)
	require.True(testInstance, application.humanReadableLoggingEnabled())
	require.Equal(testInstance, configurationPath, application.configurationMetadata.ConfigFileUsed)
}

func TestInitializeConfigurationDefaults(testInstance *testing.T) {
	workingDirectory := testInstance.TempDir()
	testInstance.Chdir(workingDirectory)

	application := NewApplication()

	initializationError := application.initializeConfiguration(application.rootCommand)
	require.NoError(testInstance, initializationError)

	require.Equal(testInstance, string(utils.LogLevelInfo), application.configuration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatStructured), application.configuration.Common.LogFormat)
	require.False(testInstance, application.humanReadableLoggingEnabled())
	require.Equal(testInstance, "~/.claude/projects", application.configuration.Tools.Issues.ProjectsRoot)
}
