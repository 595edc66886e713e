package widget

import (
	"testing"

	"layerlens/model"
)

func makeText(name, content string, fontSize, top float64) model.LayerNode {
	return model.LayerNode{
		ID:      name,
		Name:    name,
		Kind:    model.KindText,
		Bounds:  model.NewBounds(top, 0, 300, top+fontSize*1.5),
		Visible: true,
		TextStyle: &model.TextStyle{
			Text:     content,
			FontSize: fontSize,
		},
	}
}

func makeImage(id string, top, left, right, bottom float64) model.LayerNode {
	return model.LayerNode{
		ID:      id,
		Name:    id,
		Kind:    model.KindImage,
		Bounds:  model.NewBounds(top, left, right, bottom),
		Visible: true,
	}
}

func makeShape(id string, top, left, right, bottom float64) model.LayerNode {
	n := makeImage(id, top, left, right, bottom)
	n.Kind = model.KindShape
	return n
}

func TestInferEmptyCluster(t *testing.T) {
	in := NewInferrer()

	got := in.Infer(nil)
	if got.Type != model.WidgetContainer {
		t.Errorf("Type = %q, want container", got.Type)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
}

func TestClassifySingleLayer(t *testing.T) {
	in := NewInferrer()

	tests := []struct {
		name  string
		layer model.LayerNode
		want  model.WidgetType
	}{
		{"large text", makeText("t", "Welcome", 24, 0), model.WidgetHeading},
		{"small text", makeText("t", "Welcome", 16, 0), model.WidgetTextEditor},
		{"button shape", makeShape("s", 0, 0, 200, 50), model.WidgetButton},
		{"wide shape", makeShape("s", 0, 0, 800, 50), model.WidgetImage},
		{"square shape", makeShape("s", 0, 0, 50, 50), model.WidgetImage},
		{"image", makeImage("i", 0, 0, 400, 300), model.WidgetImage},
		{"group leaf", model.LayerNode{ID: "g", Kind: model.KindGroup, Bounds: model.NewBounds(0, 0, 10, 10), Visible: true}, model.WidgetContainer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in.Infer([]model.LayerNode{tt.layer})
			if got.Type != tt.want {
				t.Errorf("Type = %q, want %q", got.Type, tt.want)
			}
		})
	}
}

func TestButtonProfile(t *testing.T) {
	p := DefaultConfig().Button

	tests := []struct {
		name string
		b    model.Bounds
		want bool
	}{
		{"typical button", model.NewBounds(0, 0, 160, 48), true},
		{"aspect boundary low", model.NewBounds(0, 0, 100, 50), true},
		{"too square", model.NewBounds(0, 0, 90, 50), false},
		{"too wide", model.NewBounds(0, 0, 400, 60), false},
		{"too elongated", model.NewBounds(0, 0, 280, 40), false},
		{"too tall", model.NewBounds(0, 0, 300, 100), false},
		{"zero height", model.NewBounds(0, 0, 100, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Matches(tt.b); got != tt.want {
				t.Errorf("Matches(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestInferImageBox(t *testing.T) {
	in := NewInferrer()

	image := makeImage("hero", 0, 0, 400, 300)
	heading := makeText("title", "Launch day", 28, 310)

	got := in.Infer([]model.LayerNode{image, heading})
	if got.Type != model.WidgetImageBox {
		t.Fatalf("Type = %q, want image-box", got.Type)
	}
	if got.Confidence != 0.85 {
		t.Errorf("Confidence = %v, want 0.85", got.Confidence)
	}
	if got.Composite == nil {
		t.Fatal("Composite data missing")
	}
	if got.Composite.Title != "Launch day" {
		t.Errorf("Title = %q, want %q", got.Composite.Title, "Launch day")
	}
	if got.Composite.ImageRef != "hero" {
		t.Errorf("ImageRef = %q, want hero", got.Composite.ImageRef)
	}
	// Image above the text reads top-to-bottom.
	if got.Composite.Direction != model.DirectionColumn {
		t.Errorf("Direction = %q, want column", got.Composite.Direction)
	}
}

func TestInferImageBoxTitleFallsBackToName(t *testing.T) {
	in := NewInferrer()

	image := makeImage("hero", 0, 0, 400, 300)
	heading := makeText("title_about", "", 28, 310)

	got := in.Infer([]model.LayerNode{image, heading})
	if got.Type != model.WidgetImageBox {
		t.Fatalf("Type = %q, want image-box", got.Type)
	}
	if got.Composite.Title != "title_about" {
		t.Errorf("Title = %q, want layer name fallback", got.Composite.Title)
	}
}

func TestInferIconBox(t *testing.T) {
	in := NewInferrer()

	icon := makeImage("icon", 0, 0, 48, 48)
	heading := makeText("title", "Fast setup", 20, 60)
	body := makeText("desc", "Get going in minutes.", 14, 100)

	got := in.Infer([]model.LayerNode{icon, heading, body})
	if got.Type != model.WidgetIconBox {
		t.Fatalf("Type = %q, want icon-box", got.Type)
	}
	if got.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", got.Confidence)
	}
	if got.Composite == nil || got.Composite.Description != "Get going in minutes." {
		t.Errorf("Composite = %+v, want description text", got.Composite)
	}
}

func TestInferButtonComposite(t *testing.T) {
	in := NewInferrer()

	shape := makeShape("bg", 0, 0, 180, 48)
	label := makeText("label", "Sign up", 14, 10)

	got := in.Infer([]model.LayerNode{shape, label})
	if got.Type != model.WidgetButton {
		t.Fatalf("Type = %q, want button", got.Type)
	}
	if got.Confidence != 0.75 {
		t.Errorf("Confidence = %v, want 0.75", got.Confidence)
	}
}

func TestInferIconList(t *testing.T) {
	in := NewInferrer()

	// Heading plus two body texts with no image: three text items in
	// total, so the list rule fires before the container fallback.
	layers := []model.LayerNode{
		makeText("title", "Features", 28, 0),
		makeText("item one", "First", 14, 50),
		makeText("item two", "Second", 14, 90),
	}

	got := in.Infer(layers)
	if got.Type != model.WidgetIconList {
		t.Fatalf("Type = %q, want icon-list", got.Type)
	}
	if got.Confidence != 0.7 {
		t.Errorf("Confidence = %v, want 0.7", got.Confidence)
	}
}

func TestInferContainerFallback(t *testing.T) {
	in := NewInferrer()

	// An image and a body text with no heading matches nothing on
	// the ladder.
	layers := []model.LayerNode{
		makeImage("img", 0, 0, 400, 300),
		makeText("desc", "Just some copy.", 14, 310),
	}

	got := in.Infer(layers)
	if got.Type != model.WidgetContainer {
		t.Fatalf("Type = %q, want container", got.Type)
	}
	if got.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", got.Confidence)
	}
}

func TestInferGroupSuppression(t *testing.T) {
	in := NewInferrer()

	// The raw layers would read as image-box, but one child was
	// already classified as image-box, so the group must stay a
	// container.
	layers := []model.LayerNode{
		makeImage("hero", 0, 0, 400, 300),
		makeText("title", "Launch day", 28, 310),
	}
	childTypes := []model.WidgetType{model.WidgetImageBox, model.WidgetHeading}

	got := in.InferGroup(layers, childTypes)
	if got.Type != model.WidgetContainer {
		t.Errorf("Type = %q, want container", got.Type)
	}
	if got.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5", got.Confidence)
	}

	// Without suppressing children the group may collapse.
	got = in.InferGroup(layers, []model.WidgetType{model.WidgetImage, model.WidgetHeading})
	if got.Type != model.WidgetImageBox {
		t.Errorf("Type = %q, want image-box", got.Type)
	}
}
