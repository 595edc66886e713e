package flex

import "layerlens/model"

// RelativePosition describes where an image sits relative to a text
// block.
type RelativePosition string

const (
	PositionLeft        RelativePosition = "left"
	PositionRight       RelativePosition = "right"
	PositionTop         RelativePosition = "top"
	PositionBottom      RelativePosition = "bottom"
	PositionOverlapping RelativePosition = "overlapping"
)

// RelativePositionOf computes the spatial relationship between an
// image and a text block from the image's center point relative to
// the text rectangle.
func RelativePositionOf(image, text model.Bounds) RelativePosition {
	center := image.Center()

	switch {
	case center.X < text.Left:
		return PositionLeft
	case center.X > text.Right:
		return PositionRight
	case center.Y < text.Top:
		return PositionTop
	case center.Y > text.Bottom:
		return PositionBottom
	default:
		return PositionOverlapping
	}
}

// FlexDirection maps the relative position to the flex direction
// placing the image first along the flow. Overlapping defaults to row.
func (p RelativePosition) FlexDirection() model.FlexDirection {
	switch p {
	case PositionLeft:
		return model.DirectionRow
	case PositionRight:
		return model.DirectionRowReverse
	case PositionTop:
		return model.DirectionColumn
	case PositionBottom:
		return model.DirectionColumnReverse
	default:
		return model.DirectionRow
	}
}

// SmartDistance returns the meaningful separation between two related
// elements: the vertical gap if nonzero, otherwise the horizontal gap
// if nonzero, otherwise 0 when the rectangles overlap on both axes.
func SmartDistance(a, b model.Bounds) float64 {
	if v := a.VerticalGap(b); v != 0 {
		return v
	}
	return a.HorizontalGap(b)
}
