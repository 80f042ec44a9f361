package interaction

import "testing"

func TestPlace(t *testing.T) {
	p := Placement{Gap: 8, Margin: 16}
	viewport := Size{Width: 1000, Height: 800}

	tests := []struct {
		name    string
		anchor  Rect
		content Size
		want    Point
	}{
		{
			name:    "below and centered",
			anchor:  Rect{X: 400, Y: 100, Width: 200, Height: 50},
			content: Size{Width: 100, Height: 100},
			want:    Point{X: 450, Y: 158},
		},
		{
			name:    "flips above on bottom overflow",
			anchor:  Rect{X: 400, Y: 700, Width: 200, Height: 50},
			content: Size{Width: 100, Height: 100},
			want:    Point{X: 450, Y: 592},
		},
		{
			name:    "clamped to right margin",
			anchor:  Rect{X: 950, Y: 100, Width: 40, Height: 20},
			content: Size{Width: 200, Height: 50},
			want:    Point{X: 784, Y: 128},
		},
		{
			name:    "clamped to left margin",
			anchor:  Rect{X: 0, Y: 100, Width: 20, Height: 20},
			content: Size{Width: 200, Height: 50},
			want:    Point{X: 16, Y: 128},
		},
		{
			name:    "exact fit at bottom stays below",
			anchor:  Rect{X: 400, Y: 600, Width: 100, Height: 92},
			content: Size{Width: 100, Height: 100},
			want:    Point{X: 400, Y: 700},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Place(tt.anchor, tt.content, viewport); got != tt.want {
				t.Errorf("Place() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlacePreviewTerminal(t *testing.T) {
	viewport := Size{Width: 80, Height: 24}

	got := PlacePreview(Rect{X: 10, Y: 2, Width: 20, Height: 3}, Size{Width: 30, Height: 8}, viewport)
	if got != (Point{X: 5, Y: 6}) {
		t.Errorf("PlacePreview() below = %+v", got)
	}

	got = PlacePreview(Rect{X: 60, Y: 18, Width: 20, Height: 3}, Size{Width: 30, Height: 8}, viewport)
	if got != (Point{X: 48, Y: 9}) {
		t.Errorf("PlacePreview() above/right = %+v", got)
	}

	got = PlacePreview(Rect{X: 0, Y: 1, Width: 4, Height: 1}, Size{Width: 90, Height: 30}, viewport)
	if got != (Point{X: 2, Y: 0}) {
		t.Errorf("PlacePreview() oversized = %+v", got)
	}
}
