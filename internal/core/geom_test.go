package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
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

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectClampWithin(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		w, h     int
		expected Rect
	}{
		{"already inside", NewRect(10, 10, 80, 23), 500, 500, NewRect(10, 10, 80, 23)},
		{"negative origin", NewRect(-5, -3, 80, 23), 500, 500, NewRect(0, 0, 80, 23)},
		{"past far edge", NewRect(450, 490, 80, 23), 500, 500, NewRect(420, 477, 80, 23)},
		{"larger than bounds", NewRect(30, 30, 600, 600), 500, 500, NewRect(0, 0, 600, 600)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.ClampWithin(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("ClampWithin() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(10, -2)
	if r != NewRect(11, 0, 3, 4) {
		t.Errorf("Translate() = %+v", r)
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

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
}
