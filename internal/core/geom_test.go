package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges (half-open)",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.9, Y: 9.9, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "contained",
			a:        RectF{X: 100, Y: 100, W: 60, H: 60},
			b:        RectF{X: 120, Y: 110, W: 3, H: 15},
			expected: true,
		},
		{
			name:     "zero width never overlaps",
			a:        RectF{X: 0, Y: 0, W: 0, H: 10},
			b:        RectF{X: 0, Y: 0, W: 10, H: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFCenter(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 30, H: 30}
	cx, cy := r.Center()
	if cx != 25 || cy != 35 {
		t.Errorf("Center() = (%v, %v), expected (25, 35)", cx, cy)
	}
	if r.Right() != 40 || r.Bottom() != 50 {
		t.Errorf("Right/Bottom = %v/%v, expected 40/50", r.Right(), r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
