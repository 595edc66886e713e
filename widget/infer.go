package widget

import (
	"layerlens/flex"
	"layerlens/model"
	"layerlens/textrole"
)

// ButtonProfile describes the geometry a shape must match to read as
// a button.
type ButtonProfile struct {
	// MaxWidth is the maximum width in pixels
	// Default: 300
	MaxWidth float64

	// MaxHeight is the maximum height in pixels
	// Default: 80
	MaxHeight float64

	// MinAspect and MaxAspect bound the width/height ratio
	// Defaults: 2 and 6
	MinAspect float64
	MaxAspect float64
}

// Matches reports whether the bounds fit the button profile.
func (p ButtonProfile) Matches(b model.Bounds) bool {
	w, h := b.Width(), b.Height()
	if h <= 0 {
		return false
	}
	aspect := w / h
	return w <= p.MaxWidth && h <= p.MaxHeight &&
		aspect >= p.MinAspect && aspect <= p.MaxAspect
}

// Config holds widget classification configuration.
type Config struct {
	// HeadingFontSize is the minimum font size for a lone text layer
	// to classify as a heading widget
	// Default: 24
	HeadingFontSize float64

	// IconMaxWidth and IconMaxHeight bound the size of a "small"
	// image (an icon) in composition analysis
	// Defaults: 100 and 100
	IconMaxWidth  float64
	IconMaxHeight float64

	// Button is the button geometry profile
	Button ButtonProfile

	// Roles configures text role classification within composites
	Roles textrole.Config
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		HeadingFontSize: 24,
		IconMaxWidth:    100,
		IconMaxHeight:   100,
		Button: ButtonProfile{
			MaxWidth:  300,
			MaxHeight: 80,
			MinAspect: 2,
			MaxAspect: 6,
		},
		Roles: textrole.DefaultConfig(),
	}
}

// Classification confidence by decision path. Heuristic certainty,
// not calibrated probability.
const (
	confidenceEmpty       = 0.0
	confidenceImageBox    = 0.85
	confidenceIconBox     = 0.8
	confidenceButton      = 0.75
	confidenceIconList    = 0.7
	confidenceSingleLayer = 0.8
	confidenceFallback    = 0.5
	confidenceUnknown     = 0.3
)

// Inferrer classifies clusters of layers into widget-type hypotheses.
type Inferrer struct {
	config Config
	roles  *textrole.Classifier
}

// NewInferrer creates an inferrer with default configuration.
func NewInferrer() *Inferrer {
	return NewInferrerWithConfig(DefaultConfig())
}

// NewInferrerWithConfig creates an inferrer with custom configuration.
func NewInferrerWithConfig(config Config) *Inferrer {
	return &Inferrer{
		config: config,
		roles:  textrole.NewClassifierWithConfig(config.Roles),
	}
}

// Infer classifies a cluster of layers into a widget-type hypothesis.
func (in *Inferrer) Infer(layers []model.LayerNode) model.WidgetInference {
	switch len(layers) {
	case 0:
		return model.WidgetInference{
			Type:       model.WidgetContainer,
			Confidence: confidenceEmpty,
		}
	case 1:
		return in.classifySingleLayer(layers[0])
	}
	return in.classifyComposition(layers)
}

// suppressing widget types prevent a parent group from collapsing
// into a composite: a section holding finished cards must stay a
// container rather than read as one big card.
var suppressing = map[model.WidgetType]bool{
	model.WidgetImageBox:  true,
	model.WidgetIconBox:   true,
	model.WidgetIconList:  true,
	model.WidgetContainer: true,
	model.WidgetButton:    true,
}

// InferGroup classifies a group whose children have already been
// classified. When any child carries a suppressing widget type the
// group stays a container regardless of its own composition.
func (in *Inferrer) InferGroup(layers []model.LayerNode, childTypes []model.WidgetType) model.WidgetInference {
	for _, t := range childTypes {
		if suppressing[t] {
			return model.WidgetInference{
				Type:         model.WidgetContainer,
				Confidence:   confidenceFallback,
				SourceLayers: layers,
			}
		}
	}
	return in.Infer(layers)
}

// classifySingleLayer classifies a cluster of exactly one layer.
func (in *Inferrer) classifySingleLayer(layer model.LayerNode) model.WidgetInference {
	inference := model.WidgetInference{
		SourceLayers: []model.LayerNode{layer},
		Confidence:   confidenceSingleLayer,
	}

	switch layer.Kind {
	case model.KindText:
		if layer.Style().FontSize >= in.config.HeadingFontSize {
			inference.Type = model.WidgetHeading
		} else {
			inference.Type = model.WidgetTextEditor
		}

	case model.KindShape:
		if in.config.Button.Matches(layer.Bounds) {
			inference.Type = model.WidgetButton
			inference.Confidence = confidenceButton
		} else {
			inference.Type = model.WidgetImage
		}

	case model.KindImage:
		inference.Type = model.WidgetImage

	default:
		inference.Type = model.WidgetContainer
		inference.Confidence = confidenceUnknown
	}

	return inference
}

// composition tallies the content signals of a multi-layer cluster.
type composition struct {
	regularImages []model.LayerNode
	smallImages   []model.LayerNode
	headings      []model.LayerNode
	bodies        []model.LayerNode
	buttonShape   bool
}

func (c composition) textCount() int {
	return len(c.headings) + len(c.bodies)
}

func (c composition) texts() []model.LayerNode {
	return append(append([]model.LayerNode{}, c.headings...), c.bodies...)
}

// analyzeComposition tallies images (split into icons and regular
// images), heading and body text, and button-shaped members.
func (in *Inferrer) analyzeComposition(layers []model.LayerNode) composition {
	var comp composition
	for _, layer := range layers {
		switch layer.Kind {
		case model.KindText:
			if in.roles.RoleOf(layer) == textrole.RoleHeading {
				comp.headings = append(comp.headings, layer)
			} else {
				comp.bodies = append(comp.bodies, layer)
			}

		case model.KindImage, model.KindShape:
			if layer.Kind == model.KindShape && in.config.Button.Matches(layer.Bounds) {
				comp.buttonShape = true
				continue
			}
			if layer.Bounds.Width() <= in.config.IconMaxWidth &&
				layer.Bounds.Height() <= in.config.IconMaxHeight {
				comp.smallImages = append(comp.smallImages, layer)
			} else {
				comp.regularImages = append(comp.regularImages, layer)
			}
		}
	}
	return comp
}

// classifyComposition applies the multi-layer decision ladder, first
// match wins.
func (in *Inferrer) classifyComposition(layers []model.LayerNode) model.WidgetInference {
	comp := in.analyzeComposition(layers)

	inference := model.WidgetInference{SourceLayers: layers}

	switch {
	case len(comp.regularImages) > 0 && len(comp.headings) > 0:
		inference.Type = model.WidgetImageBox
		inference.Confidence = confidenceImageBox
		inference.Composite = in.extractCompositeData(comp.regularImages[0], comp)

	case len(comp.smallImages) > 0 && len(comp.headings) > 0 && len(comp.bodies) > 0:
		inference.Type = model.WidgetIconBox
		inference.Confidence = confidenceIconBox
		inference.Composite = in.extractCompositeData(comp.smallImages[0], comp)

	case comp.buttonShape && comp.textCount() == 1:
		inference.Type = model.WidgetButton
		inference.Confidence = confidenceButton

	case comp.textCount() >= 3 && len(comp.regularImages) == 0 && len(comp.smallImages) == 0:
		inference.Type = model.WidgetIconList
		inference.Confidence = confidenceIconList

	default:
		inference.Type = model.WidgetContainer
		inference.Confidence = confidenceFallback
	}

	return inference
}

// extractCompositeData pulls the title, description, and image
// reference out of a composite's members. The title comes from the
// first heading's text, falling back to its layer name; the
// description from the first body text. The flow direction follows
// the image's position relative to the combined text block.
func (in *Inferrer) extractCompositeData(image model.LayerNode, comp composition) *model.CompositeData {
	data := &model.CompositeData{
		ImageRef:  image.ID,
		Direction: model.DirectionRow,
	}

	if len(comp.headings) > 0 {
		h := comp.headings[0]
		data.Title = h.Style().Text
		if data.Title == "" {
			data.Title = h.Name
		}
	}
	if len(comp.bodies) > 0 {
		data.Description = comp.bodies[0].Style().Text
	}

	if texts := comp.texts(); len(texts) > 0 {
		textBounds := make([]model.Bounds, len(texts))
		for i, t := range texts {
			textBounds[i] = t.Bounds
		}
		block := model.UnionBounds(textBounds)
		data.Direction = flex.RelativePositionOf(image.Bounds, block).FlexDirection()
	}

	return data
}
