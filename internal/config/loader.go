package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrail loads the full-variant configuration.
// Search order: customPath -> ~/.hustle/configs/trail.yaml -> ./configs/trail.yaml -> embedded default
func LoadTrail(customPath string) (TrailConfig, error) {
	return loadTrailFile(customPath, "trail.yaml", defaultTrailYAML, DefaultTrailConfig)
}

// LoadClassic loads the classic-variant configuration.
// Search order: customPath -> ~/.hustle/configs/classic.yaml -> ./configs/classic.yaml -> embedded default
func LoadClassic(customPath string) (TrailConfig, error) {
	return loadTrailFile(customPath, "classic.yaml", defaultClassicYAML, DefaultClassicConfig)
}

// loadTrailFile runs the shared search chain for a trail-shaped config.
func loadTrailFile(customPath, filename string, embedded []byte, hardcoded func() TrailConfig) (TrailConfig, error) {
	var cfg TrailConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return hardcoded(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadQuiz loads the quiz item pool.
// Search order: customPath -> ~/.hustle/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
func LoadQuiz(customPath string) (QuizConfig, error) {
	var cfg QuizConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read quiz pool %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse quiz pool %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("quiz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "quiz.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultQuizYAML, &cfg); err != nil {
		return DefaultQuizConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hustle", "configs", filename)
}

// ApplyTrailPreset modifies the config based on a difficulty preset.
// Easy widens the gap between random events, hard narrows it, and fixed
// pins the weight tables and crossing risk to the opening segment.
func ApplyTrailPreset(cfg *TrailConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Events.MinGap = 1000
		cfg.Events.MaxGap = 1800
	case DifficultyHard:
		cfg.Events.MinGap = 600
		cfg.Events.MaxGap = 1200
	case DifficultyFixed:
		cfg.Journey.FixedSegment = true
	}
}
