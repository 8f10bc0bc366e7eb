package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tickpad/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Bounds for values accepted from the settings file.
const (
	maxTickIntervalMillis = int(preferences.MaxTickInterval / time.Millisecond)
	maxGraceDelayMillis   = int(preferences.MaxGraceDelay / time.Millisecond)
	maxAnimationMillis    = int(preferences.MaxAnimationDuration / time.Millisecond)
)

type yamlSettings struct {
	TickIntervalMillis      int   `yaml:"tick_interval_ms"`
	GraceDelayMillis        *int  `yaml:"grace_delay_ms"`
	AnimateProgress         *bool `yaml:"animate_progress"`
	AnimationDurationMillis int   `yaml:"animation_duration_ms"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	graceMillis := int(settings.GraceDelay / time.Millisecond)
	animate := settings.AnimateProgress
	fileData := yamlSettings{
		TickIntervalMillis:      int(settings.TickInterval / time.Millisecond),
		GraceDelayMillis:        &graceMillis,
		AnimateProgress:         &animate,
		AnimationDurationMillis: int(settings.AnimationDuration / time.Millisecond),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.TickIntervalMillis > 0 && fileData.TickIntervalMillis <= maxTickIntervalMillis {
		settings.TickInterval = time.Duration(fileData.TickIntervalMillis) * time.Millisecond
	}
	if grace := fileData.GraceDelayMillis; grace != nil && *grace >= 0 && *grace <= maxGraceDelayMillis {
		settings.GraceDelay = time.Duration(*grace) * time.Millisecond
	}
	if fileData.AnimationDurationMillis > 0 && fileData.AnimationDurationMillis <= maxAnimationMillis {
		settings.AnimationDuration = time.Duration(fileData.AnimationDurationMillis) * time.Millisecond
	}
	if fileData.AnimateProgress != nil {
		settings.AnimateProgress = *fileData.AnimateProgress
	}
}
