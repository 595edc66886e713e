// Package preview renders an inferred structure tree as a wireframe
// image for visual debugging: every node's bounds drawn as a colored
// rectangle keyed by widget type, with an optional name label.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"layerlens/model"
)

// Options controls wireframe rendering.
type Options struct {
	// Padding is the margin, in pixels, around the root bounds
	// Default: 16
	Padding int

	// DrawLabels draws each node's name above its rectangle
	// Default: true
	DrawLabels bool

	// Background fills the canvas
	// Default: white
	Background color.Color
}

// DefaultOptions returns sensible rendering defaults.
func DefaultOptions() Options {
	return Options{
		Padding:    16,
		DrawLabels: true,
		Background: color.White,
	}
}

// typeColors keys the wireframe color by widget type.
var typeColors = map[model.WidgetType]color.RGBA{
	model.WidgetContainer:  {R: 0x90, G: 0x90, B: 0x90, A: 0xff},
	model.WidgetHeading:    {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	model.WidgetTextEditor: {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	model.WidgetButton:     {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	model.WidgetImage:      {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	model.WidgetImageBox:   {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	model.WidgetIconBox:    {R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	model.WidgetIconList:   {R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
}

// Render draws the tree into a new RGBA image sized from the root
// bounds plus padding. A nil root yields a blank padded canvas.
func Render(root *model.OutputNode, opts Options) *image.RGBA {
	width, height := 1, 1
	if root != nil {
		width = int(math.Ceil(root.Bounds.Width()))
		height = int(math.Ceil(root.Bounds.Height()))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width+2*opts.Padding, height+2*opts.Padding))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if root == nil {
		return canvas
	}

	offsetX := opts.Padding - int(root.Bounds.Left)
	offsetY := opts.Padding - int(root.Bounds.Top)

	root.Walk(func(n *model.OutputNode) bool {
		c, ok := typeColors[n.Type]
		if !ok {
			c = typeColors[model.WidgetContainer]
		}

		r := image.Rect(
			int(n.Bounds.Left)+offsetX,
			int(n.Bounds.Top)+offsetY,
			int(n.Bounds.Right)+offsetX,
			int(n.Bounds.Bottom)+offsetY,
		)
		strokeRect(canvas, r, c)

		if opts.DrawLabels && n.Name != "" {
			drawLabel(canvas, n.Name, r.Min.X+2, r.Min.Y-2, c)
		}
		return true
	})

	return canvas
}

// WritePNG renders the tree and encodes it as PNG.
func WritePNG(w io.Writer, root *model.OutputNode, opts Options) error {
	return png.Encode(w, Render(root, opts))
}

// strokeRect draws a one-pixel rectangle outline.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// drawLabel draws text with the fixed 7x13 face at the given baseline.
func drawLabel(img *image.RGBA, text string, x, y int, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
