package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/temirov/issuescout/cmd/cli"
	issuescmd "github.com/temirov/issuescout/cmd/cli/issues"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testConfigurationContentConstant  = "common:\n  log_level: debug\n  log_format: console\ntools:\n  issues:\n    projects_root: /var/projects\n    output: text\n"
	testConfiguredProjectsRootPath    = "/var/projects"
	testConfiguredOutputFormatName    = "text"
	testConfiguredLogLevelName        = "debug"
	testConfiguredLogFormatName       = "console"
)

func writeConfigurationFile(testInstance *testing.T, configurationContent string) string {
	testInstance.Helper()

	configurationPath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	writeError := os.WriteFile(configurationPath, []byte(configurationContent), 0o600)
	require.NoError(testInstance, writeError)
	return configurationPath
}

func TestApplicationConfigurationDecodesFromYAML(testInstance *testing.T) {
	configurationPath := writeConfigurationFile(testInstance, testConfigurationContentConstant)

	viperInstance := viper.New()
	viperInstance.SetConfigFile(configurationPath)
	require.NoError(testInstance, viperInstance.ReadInConfig())

	applicationConfiguration := cli.ApplicationConfiguration{}
	require.NoError(testInstance, viperInstance.Unmarshal(&applicationConfiguration))

	require.Equal(testInstance, testConfiguredLogLevelName, applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, testConfiguredLogFormatName, applicationConfiguration.Common.LogFormat)
	require.Equal(testInstance, testConfiguredProjectsRootPath, applicationConfiguration.Tools.Issues.ProjectsRoot)
	require.Equal(testInstance, testConfiguredOutputFormatName, applicationConfiguration.Tools.Issues.Output)
}

func TestApplicationConfigurationDecodesFromGenericDocument(testInstance *testing.T) {
	configurationDocument := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal([]byte(testConfigurationContentConstant), &configurationDocument))

	applicationConfiguration := cli.ApplicationConfiguration{}
	require.NoError(testInstance, mapstructure.Decode(configurationDocument, &applicationConfiguration))

	require.Equal(testInstance, testConfiguredLogLevelName, applicationConfiguration.Common.LogLevel)
	require.Equal(testInstance, testConfiguredProjectsRootPath, applicationConfiguration.Tools.Issues.ProjectsRoot)
	require.Equal(testInstance, testConfiguredOutputFormatName, applicationConfiguration.Tools.Issues.Output)
}

func TestDefaultConfigurationValuesCoverIssuesCommand(testInstance *testing.T) {
	defaultValues := issuescmd.DefaultConfigurationValues("tools.issues")
	require.Contains(testInstance, defaultValues, "tools.issues.projects_root")
	require.Contains(testInstance, defaultValues, "tools.issues.output")
}
