package model

// WidgetType classifies an output node's structural role.
type WidgetType string

const (
	WidgetContainer  WidgetType = "container"
	WidgetHeading    WidgetType = "heading"
	WidgetTextEditor WidgetType = "text-editor"
	WidgetButton     WidgetType = "button"
	WidgetImage      WidgetType = "image"
	WidgetImageBox   WidgetType = "image-box"
	WidgetIconBox    WidgetType = "icon-box"
	WidgetIconList   WidgetType = "icon-list"
)

// IsComposite reports whether the widget type collapses several
// layers into one semantic unit.
func (t WidgetType) IsComposite() bool {
	switch t {
	case WidgetImageBox, WidgetIconBox, WidgetIconList:
		return true
	}
	return false
}

// FlexDirection is the main-axis direction of a flex container.
type FlexDirection string

const (
	DirectionRow           FlexDirection = "row"
	DirectionRowReverse    FlexDirection = "row-reverse"
	DirectionColumn        FlexDirection = "column"
	DirectionColumnReverse FlexDirection = "column-reverse"
)

// FlexWrap controls whether a flex container wraps onto multiple lines.
type FlexWrap string

const (
	WrapNone FlexWrap = "nowrap"
	Wrap     FlexWrap = "wrap"
)

// Layout holds the flex layout parameters inferred for a container.
type Layout struct {
	// Direction is the main-axis direction
	Direction FlexDirection `json:"direction"`

	// Wrap indicates whether children flow onto multiple lines
	Wrap FlexWrap `json:"wrap"`

	// Gap is the inferred spacing between children, in pixels
	Gap float64 `json:"gap"`

	// JustifyContent is the main-axis distribution
	JustifyContent string `json:"justifyContent"`

	// AlignItems is the cross-axis alignment
	AlignItems string `json:"alignItems"`
}

// DefaultLayout returns the layout used for containers with fewer
// than two visible children.
func DefaultLayout() Layout {
	return Layout{
		Direction:      DirectionColumn,
		Wrap:           WrapNone,
		Gap:            0,
		JustifyContent: "flex-start",
		AlignItems:     "stretch",
	}
}

// CompositeData carries the content extracted from a composite
// widget's source layers.
type CompositeData struct {
	// Title is the heading text of the composite
	Title string `json:"title,omitempty"`

	// Description is the body text of the composite
	Description string `json:"description,omitempty"`

	// ImageRef is the ID of the composite's image layer
	ImageRef string `json:"imageRef,omitempty"`

	// Direction is the image-to-text flow direction
	Direction FlexDirection `json:"direction,omitempty"`
}

// WidgetInference is the result of classifying a cluster of layers.
type WidgetInference struct {
	// Type is the inferred widget type
	Type WidgetType

	// Confidence is a heuristic certainty score in [0,1]. It is not
	// a calibrated probability.
	Confidence float64

	// SourceLayers are the layers the inference was made from
	SourceLayers []LayerNode

	// Composite holds extracted content for composite widget types
	Composite *CompositeData
}

// OutputNode is a node in the inferred structural tree.
type OutputNode struct {
	// ID uniquely identifies the node
	ID string `json:"id"`

	// Name is a human-readable display name
	Name string `json:"name"`

	// Type is the node's widget type
	Type WidgetType `json:"widgetType"`

	// Bounds is the node's position in document pixel coordinates
	Bounds Bounds `json:"bounds"`

	// Children are the node's ordered children
	Children []*OutputNode `json:"children,omitempty"`

	// Layout is present only on container nodes
	Layout *Layout `json:"layout,omitempty"`

	// Composite is present only on composite widget nodes
	Composite *CompositeData `json:"compositeData,omitempty"`

	// Confidence is the classification confidence in [0,1]
	Confidence float64 `json:"confidence"`

	// Repeating marks containers whose children form a repeating
	// pattern of similar-sized clusters
	Repeating bool `json:"repeating,omitempty"`
}

// Walk visits the node and its descendants depth-first in child
// order. The visitor returns false to stop descending into a node's
// children.
func (n *OutputNode) Walk(visit func(*OutputNode) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Count returns the total number of nodes in the subtree.
func (n *OutputNode) Count() int {
	count := 0
	n.Walk(func(*OutputNode) bool {
		count++
		return true
	})
	return count
}

// FindByType returns all nodes in the subtree with the given widget
// type, in depth-first order.
func (n *OutputNode) FindByType(t WidgetType) []*OutputNode {
	var found []*OutputNode
	n.Walk(func(node *OutputNode) bool {
		if node.Type == t {
			found = append(found, node)
		}
		return true
	})
	return found
}
