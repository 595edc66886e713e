package model

import (
	"errors"
	"fmt"
	"strings"
)

// LayerKind identifies what a layer represents.
type LayerKind string

const (
	KindText  LayerKind = "text"
	KindImage LayerKind = "image"
	KindShape LayerKind = "shape"
	KindGroup LayerKind = "group"
)

// TextStyle describes the typography of a text layer.
type TextStyle struct {
	// Text is the rendered text content
	Text string `json:"text"`

	// FontSize is the font size in pixels
	FontSize float64 `json:"fontSize"`

	// FontFamily is the font family name
	FontFamily string `json:"fontFamily,omitempty"`

	// Color is the text color as a hex string
	Color string `json:"color,omitempty"`

	// Alignment is the horizontal text alignment (left, center, right)
	Alignment string `json:"alignment,omitempty"`

	// FontWeight is the font weight (normal, bold, or a numeric weight)
	FontWeight string `json:"fontWeight,omitempty"`

	// LineHeight is the line height in pixels
	LineHeight float64 `json:"lineHeight,omitempty"`

	// LetterSpacing is the letter spacing in pixels
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
}

// DefaultTextStyle returns the neutral fallback style substituted for
// text layers whose style record is missing.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontSize:   16,
		Color:      "#000000",
		Alignment:  "left",
		FontWeight: "normal",
	}
}

// IsBold reports whether the style uses a bold font weight. Numeric
// weights of 600 and above count as bold.
func (s TextStyle) IsBold() bool {
	w := strings.ToLower(strings.TrimSpace(s.FontWeight))
	if strings.Contains(w, "bold") {
		return true
	}
	switch w {
	case "600", "700", "800", "900":
		return true
	}
	return false
}

// LineCount returns the number of lines in the text content.
func (s TextStyle) LineCount() int {
	if s.Text == "" {
		return 0
	}
	return strings.Count(s.Text, "\n") + 1
}

// LayerNode is a single positioned visual element from the source
// document. Nodes are immutable once decoded; the engine builds new
// output nodes rather than mutating its input.
type LayerNode struct {
	// ID uniquely identifies the layer within the document
	ID string `json:"id"`

	// Name is the layer name assigned in the source document
	Name string `json:"name"`

	// Kind identifies the layer variant
	Kind LayerKind `json:"kind"`

	// Bounds is the layer's position in document pixel coordinates
	Bounds Bounds `json:"bounds"`

	// Visible indicates whether the layer is rendered
	Visible bool `json:"visible"`

	// TextStyle is present only for text layers
	TextStyle *TextStyle `json:"textStyle,omitempty"`

	// Children holds nested layers for group layers
	Children []LayerNode `json:"children,omitempty"`
}

// Style returns the layer's text style, substituting the neutral
// fallback when the style record is missing.
func (n LayerNode) Style() TextStyle {
	if n.TextStyle != nil {
		return *n.TextStyle
	}
	return DefaultTextStyle()
}

// IsText reports whether the layer is a text layer.
func (n LayerNode) IsText() bool {
	return n.Kind == KindText
}

// IsImage reports whether the layer is an image layer.
func (n LayerNode) IsImage() bool {
	return n.Kind == KindImage
}

// ErrNonFiniteBounds indicates that a layer carried NaN or infinite
// bounds, which violates the upstream decoder contract.
var ErrNonFiniteBounds = errors.New("layer has non-finite bounds")

// ValidateLayers checks every layer in the tree for finite bounds.
// Non-finite geometry is a contract violation from the upstream
// decoder and is rejected rather than defaulted, so that invalid
// values never reach clustering distance math.
func ValidateLayers(layers []LayerNode) error {
	for i := range layers {
		n := &layers[i]
		if !n.Bounds.IsFinite() {
			return fmt.Errorf("layer %q: %w", n.ID, ErrNonFiniteBounds)
		}
		if err := ValidateLayers(n.Children); err != nil {
			return err
		}
	}
	return nil
}

// Flatten collapses a layer tree into its leaves in document order,
// discarding existing grouping. Group layers contribute their
// descendants; all other layers are leaves.
func Flatten(layers []LayerNode) []LayerNode {
	var leaves []LayerNode
	for _, n := range layers {
		if n.Kind == KindGroup || len(n.Children) > 0 {
			leaves = append(leaves, Flatten(n.Children)...)
			continue
		}
		leaves = append(leaves, n)
	}
	return leaves
}
