// Package config loads heuristic tuning values for the structure
// inference pipeline from YAML files. Every threshold the pipeline
// uses is represented here, so conversions can be tuned per call
// without touching shared state.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"layerlens/cluster"
	"layerlens/flex"
	"layerlens/widget"
)

// Config holds every tunable threshold of the inference pipeline.
type Config struct {
	// ClusterThreshold is the maximum gap, in pixels, linking two
	// layers into the same cluster
	ClusterThreshold float64 `yaml:"cluster_threshold"`

	// SubClusterRatio scales the threshold for sub-clustering inside
	// an already-identified container
	SubClusterRatio float64 `yaml:"sub_cluster_ratio"`

	// RowOverlapRatio is the minimum vertical overlap fraction for
	// clusters to share a row and for children to read as a row
	RowOverlapRatio float64 `yaml:"row_overlap_ratio"`

	// PatternTolerance is the size deviation fraction allowed in
	// repeating-pattern detection
	PatternTolerance float64 `yaml:"pattern_tolerance"`

	// HeadingFontSize is the minimum font size for a lone text layer
	// to classify as a heading widget
	HeadingFontSize float64 `yaml:"heading_font_size"`

	// RoleHeadingFontSize is the minimum font size for a lone text
	// candidate to take the heading role inside a composite
	RoleHeadingFontSize float64 `yaml:"role_heading_font_size"`

	// IconMaxSize bounds the width and height of a small image (icon)
	IconMaxSize float64 `yaml:"icon_max_size"`

	// Button geometry profile
	ButtonMaxWidth  float64 `yaml:"button_max_width"`
	ButtonMaxHeight float64 `yaml:"button_max_height"`
	ButtonMinAspect float64 `yaml:"button_min_aspect"`
	ButtonMaxAspect float64 `yaml:"button_max_aspect"`

	// MaxDepth bounds the cluster expansion depth; conversion fails
	// closed when exceeded
	MaxDepth int `yaml:"max_depth"`
}

// Default returns the default pipeline configuration.
func Default() Config {
	clusterDefaults := cluster.DefaultConfig()
	widgetDefaults := widget.DefaultConfig()

	return Config{
		ClusterThreshold:    clusterDefaults.Threshold,
		SubClusterRatio:     clusterDefaults.SubClusterRatio,
		RowOverlapRatio:     clusterDefaults.RowOverlapRatio,
		PatternTolerance:    clusterDefaults.PatternTolerance,
		HeadingFontSize:     widgetDefaults.HeadingFontSize,
		RoleHeadingFontSize: widgetDefaults.Roles.SingleHeadingFontSize,
		IconMaxSize:         widgetDefaults.IconMaxWidth,
		ButtonMaxWidth:      widgetDefaults.Button.MaxWidth,
		ButtonMaxHeight:     widgetDefaults.Button.MaxHeight,
		ButtonMinAspect:     widgetDefaults.Button.MinAspect,
		ButtonMaxAspect:     widgetDefaults.Button.MaxAspect,
		MaxDepth:            10,
	}
}

// Load reads a YAML configuration file. Fields absent from the file
// keep their defaults; unknown fields are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ClusterConfig maps the flat tuning values onto the cluster package
// configuration.
func (c Config) ClusterConfig() cluster.Config {
	return cluster.Config{
		Threshold:        c.ClusterThreshold,
		SubClusterRatio:  c.SubClusterRatio,
		RowOverlapRatio:  c.RowOverlapRatio,
		PatternTolerance: c.PatternTolerance,
	}
}

// FlexConfig maps the flat tuning values onto the flex package
// configuration.
func (c Config) FlexConfig() flex.Config {
	return flex.Config{
		RowOverlapRatio: c.RowOverlapRatio,
	}
}

// WidgetConfig maps the flat tuning values onto the widget package
// configuration.
func (c Config) WidgetConfig() widget.Config {
	cfg := widget.DefaultConfig()
	cfg.HeadingFontSize = c.HeadingFontSize
	cfg.IconMaxWidth = c.IconMaxSize
	cfg.IconMaxHeight = c.IconMaxSize
	cfg.Button = widget.ButtonProfile{
		MaxWidth:  c.ButtonMaxWidth,
		MaxHeight: c.ButtonMaxHeight,
		MinAspect: c.ButtonMinAspect,
		MaxAspect: c.ButtonMaxAspect,
	}
	cfg.Roles.SingleHeadingFontSize = c.RoleHeadingFontSize
	return cfg
}
