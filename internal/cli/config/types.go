// Package config provides configuration management for the swiftkt CLI.
package config

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
)

// Config holds all CLI configuration options.
type Config struct {
	ToolName   string            `koanf:"tool_name"`
	Workers    int               `koanf:"workers"`
	Verbose    bool              `koanf:"verbose"`
	Output     string            `koanf:"output"`
	OutDir     string            `koanf:"out_dir"`
	Renames    map[string]string `koanf:"renames"`
	Heuristics *kotlin.Policy    `koanf:"heuristics"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // TTY=text, otherwise markdown
	FileName      = "swiftkt.yaml"
	EnvPrefix     = "SWIFTKT_"
)

// ValidOutputs lists the accepted output modes.
var ValidOutputs = []string{"auto", "text", "markdown"}

// TranslatorConfig converts the CLI configuration into translator options.
func (c *Config) TranslatorConfig() kotlin.Config {
	return kotlin.Config{
		ToolName: c.ToolName,
		Workers:  c.Workers,
		Renames:  c.Renames,
		Policy:   c.Heuristics,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ToolName == "" {
		return fmt.Errorf("tool_name is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	valid := false
	for _, o := range ValidOutputs {
		if c.Output == o {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output %q, must be one of: auto, text, markdown", c.Output)
	}
	if c.Heuristics != nil {
		if err := c.Heuristics.Validate(); err != nil {
			return fmt.Errorf("heuristics: %w", err)
		}
	}
	return nil
}

func defaults() map[string]any {
	p := kotlin.DefaultPolicy()
	return map[string]any{
		"tool_name": kotlin.DefaultToolName,
		"workers":   runtime.GOMAXPROCS(0),
		"verbose":   false,
		"output":    DefaultOutput,
		"out_dir":   "",

		"heuristics.test_prefix":             p.TestPrefix,
		"heuristics.test_annotation":         p.TestAnnotation,
		"heuristics.test_base":               p.TestBase,
		"heuristics.test_annotations":        p.TestAnnotations,
		"heuristics.bridge_base":             p.BridgeBase,
		"heuristics.bridge_template":         p.BridgeTemplate,
		"heuristics.serializable_markers":    p.SerializableMarkers,
		"heuristics.serializable_annotation": p.SerializableAnnotation,
		"heuristics.excluded_supertypes":     p.ExcludedSupertypes,
		"heuristics.query_builder_substring": p.QueryBuilderSubstring,
		"heuristics.query_builder_type":      p.QueryBuilderType,
		"heuristics.dropped_label_prefixes":  p.DroppedLabelPrefixes,
		"heuristics.dropped_labels":          p.DroppedLabels,
		"heuristics.elided_members":          p.ElidedMembers,
		"heuristics.argumentless_calls":      p.ArgumentlessCalls,
		"heuristics.dropped_attributes":      p.DroppedAttributes,
	}
}
