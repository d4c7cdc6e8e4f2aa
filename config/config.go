// Package config loads evaluation settings from an optional YAML/JSON file
// with environment variable overrides. The core engine clamps bad values and
// never fails; this package is the input boundary where invalid settings are
// surfaced to the user instead.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bidlevel/bidlevel/core"
)

// Settings is the complete application configuration.
type Settings struct {
	Alternates AlternatesConfig `mapstructure:"alternates"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
}

// AlternatesConfig shapes the alternate universe and its exclusion rules.
type AlternatesConfig struct {
	Count                    int      `mapstructure:"count"`
	Labels                   []string `mapstructure:"labels"`
	SpecialEnabled           bool     `mapstructure:"special_enabled"`
	SpecialLabel             string   `mapstructure:"special_label"`
	ExcludeSpecialWithSecond bool     `mapstructure:"exclude_special_with_second"`
	ExcludeThirdFourth       bool     `mapstructure:"exclude_third_fourth"`
}

// EvaluationConfig holds the reporting knobs.
type EvaluationConfig struct {
	BudgetCap float64 `mapstructure:"budget_cap"`
	TopN      int     `mapstructure:"top_n"`
}

// Load reads settings from the given file plus BIDLEVEL_* environment
// overrides. An empty path loads defaults only.
func Load(path string) (*Settings, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("BIDLEVEL")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// setDefaults configures default values for all settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("alternates.count", 4)
	v.SetDefault("alternates.special_enabled", false)
	v.SetDefault("alternates.special_label", "Alt 2A")
	v.SetDefault("alternates.exclude_special_with_second", false)
	v.SetDefault("alternates.exclude_third_fourth", false)

	v.SetDefault("evaluation.budget_cap", 0.0)
	v.SetDefault("evaluation.top_n", 0)
}

// Validate checks that all settings values are usable.
func (s *Settings) Validate() error {
	if s.Alternates.Count < 0 {
		return fmt.Errorf("alternates.count must not be negative")
	}
	if len(s.Alternates.Labels) > s.Alternates.Count {
		return fmt.Errorf("alternates.labels has %d entries for %d slots",
			len(s.Alternates.Labels), s.Alternates.Count)
	}
	if s.Evaluation.BudgetCap < 0 {
		return fmt.Errorf("evaluation.budget_cap must not be negative")
	}
	if s.Evaluation.TopN < 0 {
		return fmt.Errorf("evaluation.top_n must not be negative")
	}
	return nil
}

// Core converts the settings into the engine's configuration struct.
func (s *Settings) Core() core.Config {
	return core.Config{
		AlternateCount:           s.Alternates.Count,
		AlternateLabels:          s.Alternates.Labels,
		SpecialEnabled:           s.Alternates.SpecialEnabled,
		SpecialLabel:             s.Alternates.SpecialLabel,
		ExcludeSpecialWithSecond: s.Alternates.ExcludeSpecialWithSecond,
		ExcludeThirdFourth:       s.Alternates.ExcludeThirdFourth,
		BudgetCap:                s.Evaluation.BudgetCap,
		TopN:                     s.Evaluation.TopN,
	}
}
