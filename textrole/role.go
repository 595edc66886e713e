// Package textrole assigns heading and description roles among text
// layers that belong to the same widget, using weighted scoring over
// layer names, typography, and text shape.
package textrole

import (
	"regexp"

	"layerlens/model"
)

// Role is the content role assigned to a text layer.
type Role string

const (
	RoleHeading     Role = "heading"
	RoleDescription Role = "description"
)

// Score weights. Name patterns dominate, typography refines, and
// text shape breaks near-ties.
const (
	scoreHeadingName     = 50
	scoreDescriptionName = -50
	scoreFontHuge        = 30  // >= 24px
	scoreFontLarge       = 20  // >= 20px
	scoreFontMedium      = 10  // >= 18px
	scoreFontSmall       = -20 // <= 14px
	scoreBold            = 15
	scoreShortText       = 10  // <= 50 chars
	scoreLongText        = -15 // > 100 chars
	scoreSingleLine      = 10
	scoreManyLines       = -10 // > 2 lines
)

// Config holds role classification configuration.
type Config struct {
	// HeadingPatterns match layer names that indicate a heading
	HeadingPatterns []*regexp.Regexp

	// DescriptionPatterns match layer names that indicate body text
	DescriptionPatterns []*regexp.Regexp

	// SingleHeadingFontSize is the minimum font size for a lone text
	// layer to be classified as a heading
	// Default: 18
	SingleHeadingFontSize float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		HeadingPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(heading|title|h[1-6]|headline|header|name)`),
		},
		DescriptionPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(desc|description|text|paragraph|body|content|subtitle|sub[-_]?title|info)`),
		},
		SingleHeadingFontSize: 18,
	}
}

// Assignment holds the outcome of role classification.
type Assignment struct {
	// Heading is the layer assigned the heading role, if any
	Heading *model.LayerNode

	// Description is the layer assigned the description role, if any
	Description *model.LayerNode
}

// Classifier assigns content roles to text layers.
type Classifier struct {
	config Config
}

// NewClassifier creates a classifier with default configuration.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a classifier with custom configuration.
func NewClassifierWithConfig(config Config) *Classifier {
	return &Classifier{config: config}
}

// MatchesHeadingName reports whether the layer name indicates a heading.
func (c *Classifier) MatchesHeadingName(name string) bool {
	for _, p := range c.config.HeadingPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// MatchesDescriptionName reports whether the layer name indicates body text.
func (c *Classifier) MatchesDescriptionName(name string) bool {
	for _, p := range c.config.DescriptionPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

// RoleOf classifies a single text layer in isolation: heading when
// the font size reaches the configured minimum or the name matches a
// heading pattern, description otherwise.
func (c *Classifier) RoleOf(layer model.LayerNode) Role {
	style := layer.Style()
	if style.FontSize >= c.config.SingleHeadingFontSize || c.MatchesHeadingName(layer.Name) {
		return RoleHeading
	}
	return RoleDescription
}

// Score computes the heading-likelihood score for a text layer. The
// score is relative; it only orders candidates within one widget.
func (c *Classifier) Score(layer model.LayerNode) int {
	score := 0

	if c.MatchesHeadingName(layer.Name) {
		score += scoreHeadingName
	}
	if c.MatchesDescriptionName(layer.Name) {
		score += scoreDescriptionName
	}

	style := layer.Style()
	switch {
	case style.FontSize >= 24:
		score += scoreFontHuge
	case style.FontSize >= 20:
		score += scoreFontLarge
	case style.FontSize >= 18:
		score += scoreFontMedium
	case style.FontSize <= 14:
		score += scoreFontSmall
	}

	if style.IsBold() {
		score += scoreBold
	}

	length := len(style.Text)
	if length <= 50 {
		score += scoreShortText
	} else if length > 100 {
		score += scoreLongText
	}

	lines := style.LineCount()
	if lines <= 1 {
		score += scoreSingleLine
	} else if lines > 2 {
		score += scoreManyLines
	}

	return score
}

// Classify assigns roles among the candidate text layers. A single
// candidate gets one role via RoleOf. With two or more, the highest
// scorer becomes the heading and the lowest the description; score
// ties are broken by vertical position, topmost winning the heading
// and bottommost the description.
func (c *Classifier) Classify(layers []model.LayerNode) Assignment {
	switch len(layers) {
	case 0:
		return Assignment{}
	case 1:
		if c.RoleOf(layers[0]) == RoleHeading {
			return Assignment{Heading: &layers[0]}
		}
		return Assignment{Description: &layers[0]}
	}

	scores := make([]int, len(layers))
	for i, layer := range layers {
		scores[i] = c.Score(layer)
	}

	heading := 0
	description := 0
	for i := 1; i < len(layers); i++ {
		if scores[i] > scores[heading] ||
			(scores[i] == scores[heading] && layers[i].Bounds.Top < layers[heading].Bounds.Top) {
			heading = i
		}
		if scores[i] < scores[description] ||
			(scores[i] == scores[description] && layers[i].Bounds.Top >= layers[description].Bounds.Top) {
			description = i
		}
	}

	return Assignment{
		Heading:     &layers[heading],
		Description: &layers[description],
	}
}
