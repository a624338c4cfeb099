package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "overlap on one axis only",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 20, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := NewBox(10, 20, 40, 30).Inset(4)

	if b.X != 14 || b.Y != 24 {
		t.Errorf("Inset() top-left = (%v, %v), expected (14, 24)", b.X, b.Y)
	}
	if b.W != 32 || b.H != 22 {
		t.Errorf("Inset() size = (%v, %v), expected (32, 22)", b.W, b.H)
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
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

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
}
