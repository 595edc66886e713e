package flex

import (
	"math"
	"sort"

	"layerlens/model"
)

// Config holds layout inference configuration.
type Config struct {
	// RowOverlapRatio is the minimum vertical overlap, as a fraction
	// of the smaller height, for two children to count as sharing a row
	// Default: 0.3
	RowOverlapRatio float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		RowOverlapRatio: 0.3,
	}
}

// Inferrer derives flex layout parameters for a set of sibling
// elements from geometry alone.
type Inferrer struct {
	config Config
}

// NewInferrer creates an inferrer with default configuration.
func NewInferrer() *Inferrer {
	return NewInferrerWithConfig(DefaultConfig())
}

// NewInferrerWithConfig creates an inferrer with custom configuration.
func NewInferrerWithConfig(config Config) *Inferrer {
	return &Inferrer{config: config}
}

// Infer derives the flex layout for a container from its children.
// Only visible children with positive dimensions participate; fewer
// than two such children yield the default layout.
func (in *Inferrer) Infer(children []model.LayerNode) model.Layout {
	var visible []model.Bounds
	for _, c := range children {
		if c.Visible && c.Bounds.IsValid() {
			visible = append(visible, c.Bounds)
		}
	}
	return in.InferBounds(visible)
}

// InferBounds derives the flex layout for a container from child
// bounding boxes directly.
func (in *Inferrer) InferBounds(children []model.Bounds) model.Layout {
	if len(children) < 2 {
		return model.DefaultLayout()
	}

	direction := in.detectDirection(children)

	layout := model.Layout{
		Direction: direction,
		Wrap:      model.WrapNone,
		Gap:       calculateGap(children, direction),
	}

	if direction == model.DirectionRow {
		layout.JustifyContent = "space-between"
		layout.AlignItems = "flex-start"
		if detectWrap(children) {
			layout.Wrap = model.Wrap
		}
	} else {
		layout.JustifyContent = "flex-start"
		layout.AlignItems = "stretch"
	}

	return layout
}

// detectDirection returns row when any pair of children shares
// vertical overlap exceeding the configured fraction of the smaller
// height, column otherwise. Short-circuits on the first qualifying
// pair in input order.
func (in *Inferrer) detectDirection(children []model.Bounds) model.FlexDirection {
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			overlap := children[i].VerticalOverlap(children[j])
			smaller := math.Min(children[i].Height(), children[j].Height())
			if overlap > in.config.RowOverlapRatio*smaller {
				return model.DirectionRow
			}
		}
	}
	return model.DirectionColumn
}

// detectWrap sweeps top-sorted children, tracking the vertical span
// of the current line. A child starts a new line when its top exceeds
// the midpoint of the current span; otherwise it extends the line's
// bottom. More than one line means the container wraps.
func detectWrap(children []model.Bounds) bool {
	sorted := make([]model.Bounds, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Top < sorted[j].Top
	})

	lineTop := sorted[0].Top
	lineBottom := sorted[0].Bottom
	lines := 1

	for _, c := range sorted[1:] {
		if c.Top > (lineTop+lineBottom)/2 {
			lines++
			lineTop = c.Top
			lineBottom = c.Bottom
			continue
		}
		lineBottom = math.Max(lineBottom, c.Bottom)
	}

	return lines > 1
}

// calculateGap returns the median of the positive gaps between
// consecutive children along the main axis. The median resists a
// single outlier gap skewing the result. Fewer than two positive
// gaps yield 0.
func calculateGap(children []model.Bounds, direction model.FlexDirection) float64 {
	sorted := make([]model.Bounds, len(children))
	copy(sorted, children)

	if direction == model.DirectionRow {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Left < sorted[j].Left
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Top < sorted[j].Top
		})
	}

	var gaps []float64
	for i := 1; i < len(sorted); i++ {
		var gap float64
		if direction == model.DirectionRow {
			gap = sorted[i].Left - sorted[i-1].Right
		} else {
			gap = sorted[i].Top - sorted[i-1].Bottom
		}
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}

	if len(gaps) < 2 {
		return 0
	}
	return median(gaps)
}

// median returns the median of the values, averaging the middle pair
// for even counts. The input slice is sorted in place.
func median(values []float64) float64 {
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 0 {
		return (values[mid-1] + values[mid]) / 2
	}
	return values[mid]
}
