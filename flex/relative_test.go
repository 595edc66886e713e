package flex

import (
	"testing"

	"layerlens/model"
)

func TestRelativePositionOf(t *testing.T) {
	text := model.NewBounds(100, 100, 300, 150)

	tests := []struct {
		name  string
		image model.Bounds
		want  RelativePosition
	}{
		{"image left of text", model.NewBounds(100, 0, 80, 150), PositionLeft},
		{"image right of text", model.NewBounds(100, 320, 400, 150), PositionRight},
		{"image above text", model.NewBounds(0, 150, 250, 80), PositionTop},
		{"image below text", model.NewBounds(170, 150, 250, 250), PositionBottom},
		{"image over text", model.NewBounds(110, 150, 250, 140), PositionOverlapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativePositionOf(tt.image, text); got != tt.want {
				t.Errorf("RelativePositionOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativePositionFlexDirection(t *testing.T) {
	tests := []struct {
		position RelativePosition
		want     model.FlexDirection
	}{
		{PositionLeft, model.DirectionRow},
		{PositionRight, model.DirectionRowReverse},
		{PositionTop, model.DirectionColumn},
		{PositionBottom, model.DirectionColumnReverse},
		{PositionOverlapping, model.DirectionRow},
	}

	for _, tt := range tests {
		if got := tt.position.FlexDirection(); got != tt.want {
			t.Errorf("%q.FlexDirection() = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestSmartDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Bounds
		want float64
	}{
		{
			name: "vertical gap wins",
			a:    model.NewBounds(0, 0, 100, 50),
			b:    model.NewBounds(70, 0, 100, 120),
			want: 20,
		},
		{
			name: "horizontal gap when rows overlap",
			a:    model.NewBounds(0, 0, 50, 100),
			b:    model.NewBounds(0, 80, 130, 100),
			want: 30,
		},
		{
			name: "overlap on both axes",
			a:    model.NewBounds(0, 0, 100, 100),
			b:    model.NewBounds(50, 50, 150, 150),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmartDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("SmartDistance = %v, want %v", got, tt.want)
			}
		})
	}
}
