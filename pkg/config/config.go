package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
)

const (
	// ConfigDirName is the per-user configuration directory.
	ConfigDirName  = ".cancella"
	configFileName = "config.yaml"
)

// Path returns the settings file location under the user's home
// directory.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName, configFileName), nil
}

// Read loads settings from disk. A missing file is not an error:
// defaults are returned so the client works out of the box.
func Read() (*models.Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.UI.PageSize <= 0 {
		settings.UI.PageSize = models.DefaultSettings().UI.PageSize
	}
	return settings, nil
}

// Write persists settings, creating the config directory when needed.
func Write(settings *models.Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
