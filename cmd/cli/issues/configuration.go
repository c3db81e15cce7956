package issues

import (
	"strings"
)

const (
	projectsRootConfigurationKeyConstant = "projects_root"
	outputConfigurationKeyConstant       = "output"
	configurationKeySeparatorConstant    = "."
	defaultProjectsRootConstant          = "~/.claude/projects"
)

// OutputFormat enumerates supported issue rendering formats.
type OutputFormat string

// Supported output formats.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatText OutputFormat = "text"
)

// CommandConfiguration captures the configurable behavior of the issues command.
type CommandConfiguration struct {
	ProjectsRoot string `mapstructure:"projects_root"`
	Output       string `mapstructure:"output"`
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + projectsRootConfigurationKeyConstant: defaultProjectsRootConstant,
		configurationPrefix + configurationKeySeparatorConstant + outputConfigurationKeyConstant:       string(OutputFormatJSON),
	}
}

// sanitize normalizes configured values, falling back to defaults for blanks.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.ProjectsRoot = strings.TrimSpace(sanitized.ProjectsRoot)
	if len(sanitized.ProjectsRoot) == 0 {
		sanitized.ProjectsRoot = defaultProjectsRootConstant
	}

	sanitized.Output = strings.ToLower(strings.TrimSpace(sanitized.Output))
	if len(sanitized.Output) == 0 {
		sanitized.Output = string(OutputFormatJSON)
	}

	return sanitized
}
