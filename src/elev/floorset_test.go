package elev

import (
	"slices"
	"testing"
)

func TestFloorSet(t *testing.T) {
	fs := newFloorSet(10)
	if !fs.Empty() || fs.Highest() != 0 || fs.Lowest() != 0 {
		t.Fatalf("new set not empty: %v", fs.Floors())
	}

	fs.Add(7)
	fs.Add(3)
	fs.Add(7)
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
	if got := fs.Floors(); !slices.Equal(got, []int{3, 7}) {
		t.Errorf("Floors = %v, want [3 7]", got)
	}
	if fs.Highest() != 7 || fs.Lowest() != 3 {
		t.Errorf("Highest, Lowest = %d, %d, want 7, 3", fs.Highest(), fs.Lowest())
	}

	tests := []struct {
		floor        int
		above, below bool
	}{
		{1, true, false},
		{3, true, false},
		{5, true, true},
		{7, false, true},
		{10, false, true},
	}
	for _, tt := range tests {
		if got := fs.AnyAbove(tt.floor); got != tt.above {
			t.Errorf("AnyAbove(%d) = %t, want %t", tt.floor, got, tt.above)
		}
		if got := fs.AnyBelow(tt.floor); got != tt.below {
			t.Errorf("AnyBelow(%d) = %t, want %t", tt.floor, got, tt.below)
		}
	}

	fs.Remove(3)
	fs.Remove(3)
	if fs.Has(3) || !fs.Has(7) {
		t.Errorf("after Remove(3): %v", fs.Floors())
	}
	if fs.Has(0) || fs.Has(11) {
		t.Error("Has outside the building should be false")
	}
}
