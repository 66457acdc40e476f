package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/gotxt/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds command-specific configuration defaults.
type ApplicationConfiguration struct {
	Export ExportConfiguration `mapstructure:"export"`
	Switch SwitchConfiguration `mapstructure:"switch"`
}

// ExportConfiguration defines defaults for the export command.
type ExportConfiguration struct {
	Extension          string   `mapstructure:"extension"`
	Output             string   `mapstructure:"output"`
	ExcludeDirectories []string `mapstructure:"exclude_dirs"`
	IgnoreFiles        []string `mapstructure:"ignore_files"`
	UseIgnoreFile      *bool    `mapstructure:"use_ignore_file"`
	Clipboard          *bool    `mapstructure:"copy"`
}

// SwitchConfiguration defines defaults for the switch command.
type SwitchConfiguration struct {
	Upstream string `mapstructure:"upstream"`
	Fork     string `mapstructure:"fork"`
	Manifest string `mapstructure:"manifest"`
	Root     string `mapstructure:"root"`
	DryRun   *bool  `mapstructure:"dry_run"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
// The global file is read first; the local or explicit file overrides it.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, err := os.UserHomeDir(); err == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath)
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Export.ExcludeDirectories = utils.DeduplicatePatterns(merged.Export.ExcludeDirectories)
	merged.Export.IgnoreFiles = utils.DeduplicatePatterns(merged.Export.IgnoreFiles)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName)
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath
	}
	return filepath.Join(workingDirectory, explicitPath)
}

func loadConfigurationFromPath(path string) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	result.Export = result.Export.merge(override.Export)
	result.Switch = result.Switch.merge(override.Switch)
	return result
}

func (config ExportConfiguration) merge(override ExportConfiguration) ExportConfiguration {
	result := config
	if override.Extension != "" {
		result.Extension = override.Extension
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if len(override.ExcludeDirectories) > 0 {
		result.ExcludeDirectories = append([]string{}, utils.DeduplicatePatterns(override.ExcludeDirectories)...)
	}
	if len(override.IgnoreFiles) > 0 {
		result.IgnoreFiles = append([]string{}, utils.DeduplicatePatterns(override.IgnoreFiles)...)
	}
	if override.UseIgnoreFile != nil {
		result.UseIgnoreFile = cloneBool(override.UseIgnoreFile)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	return result
}

func (config SwitchConfiguration) merge(override SwitchConfiguration) SwitchConfiguration {
	result := config
	if override.Upstream != "" {
		result.Upstream = override.Upstream
	}
	if override.Fork != "" {
		result.Fork = override.Fork
	}
	if override.Manifest != "" {
		result.Manifest = override.Manifest
	}
	if override.Root != "" {
		result.Root = override.Root
	}
	if override.DryRun != nil {
		result.DryRun = cloneBool(override.DryRun)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
