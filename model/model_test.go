package model

import (
	"errors"
	"math"
	"testing"
)

func TestBoundsDimensions(t *testing.T) {
	b := NewBounds(10, 20, 120, 60)

	if got := b.Width(); got != 100 {
		t.Errorf("Width() = %v, want 100", got)
	}
	if got := b.Height(); got != 50 {
		t.Errorf("Height() = %v, want 50", got)
	}
	if got := b.Area(); got != 5000 {
		t.Errorf("Area() = %v, want 5000", got)
	}

	center := b.Center()
	if center.X != 70 || center.Y != 35 {
		t.Errorf("Center() = %+v, want {70 35}", center)
	}
}

func TestBoundsGap(t *testing.T) {
	tests := []struct {
		name string
		a, b Bounds
		want float64
	}{
		{
			name: "horizontal gap only",
			a:    NewBounds(0, 0, 10, 10),
			b:    NewBounds(0, 15, 25, 10),
			want: 5,
		},
		{
			name: "vertical gap only",
			a:    NewBounds(0, 0, 10, 10),
			b:    NewBounds(30, 0, 10, 40),
			want: 20,
		},
		{
			name: "diagonal gap",
			a:    NewBounds(0, 0, 10, 10),
			b:    NewBounds(14, 13, 23, 24),
			want: 5, // 3-4-5 triangle
		},
		{
			name: "overlapping",
			a:    NewBounds(0, 0, 10, 10),
			b:    NewBounds(5, 5, 15, 15),
			want: 0,
		},
		{
			name: "touching edges",
			a:    NewBounds(0, 0, 10, 10),
			b:    NewBounds(0, 10, 20, 10),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Gap(tt.b); got != tt.want {
				t.Errorf("Gap() = %v, want %v", got, tt.want)
			}
			// Gap is symmetric
			if got := tt.b.Gap(tt.a); got != tt.want {
				t.Errorf("Gap() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsVerticalOverlap(t *testing.T) {
	a := NewBounds(0, 0, 10, 100)
	b := NewBounds(60, 50, 80, 160)

	if got := a.VerticalOverlap(b); got != 40 {
		t.Errorf("VerticalOverlap() = %v, want 40", got)
	}

	c := NewBounds(200, 0, 10, 300)
	if got := a.VerticalOverlap(c); got != 0 {
		t.Errorf("VerticalOverlap() disjoint = %v, want 0", got)
	}
}

func TestUnionBoundsContainsMembers(t *testing.T) {
	members := []Bounds{
		NewBounds(10, 5, 50, 40),
		NewBounds(0, 100, 200, 30),
		NewBounds(80, 20, 60, 120),
	}

	union := UnionBounds(members)
	for i, m := range members {
		if !union.Contains(m) {
			t.Errorf("union %+v does not contain member %d %+v", union, i, m)
		}
	}

	if got := UnionBounds(nil); got != (Bounds{}) {
		t.Errorf("UnionBounds(nil) = %+v, want zero", got)
	}
}

func TestBoundsIsFinite(t *testing.T) {
	if !NewBounds(0, 0, 10, 10).IsFinite() {
		t.Error("finite bounds reported as non-finite")
	}
	if NewBounds(math.NaN(), 0, 10, 10).IsFinite() {
		t.Error("NaN bounds reported as finite")
	}
	if NewBounds(0, 0, math.Inf(1), 10).IsFinite() {
		t.Error("infinite bounds reported as finite")
	}
}

func TestValidateLayers(t *testing.T) {
	valid := []LayerNode{
		{ID: "a", Kind: KindShape, Bounds: NewBounds(0, 0, 10, 10)},
		{ID: "g", Kind: KindGroup, Children: []LayerNode{
			{ID: "b", Kind: KindText, Bounds: NewBounds(5, 5, 50, 20)},
		}},
	}
	if err := ValidateLayers(valid); err != nil {
		t.Errorf("ValidateLayers(valid) = %v, want nil", err)
	}

	invalid := []LayerNode{
		{ID: "g", Kind: KindGroup, Children: []LayerNode{
			{ID: "bad", Kind: KindImage, Bounds: NewBounds(0, 0, math.NaN(), 10)},
		}},
	}
	err := ValidateLayers(invalid)
	if !errors.Is(err, ErrNonFiniteBounds) {
		t.Errorf("ValidateLayers(invalid) = %v, want ErrNonFiniteBounds", err)
	}
}

func TestFlatten(t *testing.T) {
	layers := []LayerNode{
		{ID: "t1", Kind: KindText, Bounds: NewBounds(0, 0, 10, 10)},
		{ID: "g1", Kind: KindGroup, Children: []LayerNode{
			{ID: "i1", Kind: KindImage, Bounds: NewBounds(20, 0, 30, 10)},
			{ID: "g2", Kind: KindGroup, Children: []LayerNode{
				{ID: "s1", Kind: KindShape, Bounds: NewBounds(40, 0, 50, 10)},
			}},
		}},
		{ID: "g3", Kind: KindGroup}, // empty group contributes nothing
	}

	leaves := Flatten(layers)
	want := []string{"t1", "i1", "s1"}
	if len(leaves) != len(want) {
		t.Fatalf("Flatten() returned %d leaves, want %d", len(leaves), len(want))
	}
	for i, id := range want {
		if leaves[i].ID != id {
			t.Errorf("leaf %d = %q, want %q", i, leaves[i].ID, id)
		}
	}
}

func TestStyleFallback(t *testing.T) {
	n := LayerNode{ID: "t", Kind: KindText}
	style := n.Style()

	if style.FontSize != 16 {
		t.Errorf("fallback FontSize = %v, want 16", style.FontSize)
	}
	if style.Color != "#000000" {
		t.Errorf("fallback Color = %q, want #000000", style.Color)
	}
	if style.Alignment != "left" {
		t.Errorf("fallback Alignment = %q, want left", style.Alignment)
	}
	if style.IsBold() {
		t.Error("fallback style reported as bold")
	}
}

func TestTextStyleIsBold(t *testing.T) {
	tests := []struct {
		weight string
		want   bool
	}{
		{"bold", true},
		{"Bold", true},
		{"semibold", true},
		{"700", true},
		{"600", true},
		{"normal", false},
		{"400", false},
		{"", false},
	}

	for _, tt := range tests {
		s := TextStyle{FontWeight: tt.weight}
		if got := s.IsBold(); got != tt.want {
			t.Errorf("IsBold(%q) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestTextStyleLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one line", 1},
		{"two\nlines", 2},
		{"a\nb\nc", 3},
	}

	for _, tt := range tests {
		s := TextStyle{Text: tt.text}
		if got := s.LineCount(); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestOutputNodeWalk(t *testing.T) {
	root := &OutputNode{
		ID:   "root",
		Type: WidgetContainer,
		Children: []*OutputNode{
			{ID: "a", Type: WidgetHeading},
			{ID: "b", Type: WidgetContainer, Children: []*OutputNode{
				{ID: "c", Type: WidgetImage},
			}},
		},
	}

	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}

	containers := root.FindByType(WidgetContainer)
	if len(containers) != 2 {
		t.Errorf("FindByType(container) returned %d nodes, want 2", len(containers))
	}

	// Stopping descent at b must skip c
	var visited []string
	root.Walk(func(n *OutputNode) bool {
		visited = append(visited, n.ID)
		return n.ID != "b"
	})
	for _, id := range visited {
		if id == "c" {
			t.Error("Walk descended into a node the visitor rejected")
		}
	}
}
