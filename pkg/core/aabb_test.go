package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABB_FromPointsOrdersCorners(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -2, 3), NewVec3(-1, 2, -3))
	if box.X.Min != -1 || box.X.Max != 1 {
		t.Errorf("Expected X [-1, 1], got %v", box.X)
	}
	if box.Y.Min != -2 || box.Y.Max != 2 {
		t.Errorf("Expected Y [-2, 2], got %v", box.Y)
	}
	if box.Z.Min != -3 || box.Z.Max != 3 {
		t.Errorf("Expected Z [-3, 3], got %v", box.Z)
	}
}

func TestAABB_PadsFlatAxis(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	if box.Y.Min >= 0 || box.Y.Max <= 0 {
		t.Errorf("Expected flat axis to be padded around 0, got [%g, %g]", box.Y.Min, box.Y.Max)
	}
	if box.X.Min != 0 || box.X.Max != 1 {
		t.Errorf("Expected non-flat axis to stay [0, 1], got [%g, %g]", box.X.Min, box.X.Max)
	}
}

func TestAABB_UnionContainsBoth(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		b := NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
		return NewAABBFromPoints(a, b)
	}
	pointIn := func(box AABB) Vec3 {
		return NewVec3(
			box.X.Min+random.Float64()*box.X.Size(),
			box.Y.Min+random.Float64()*box.Y.Size(),
			box.Z.Min+random.Float64()*box.Z.Size(),
		)
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		u := AABBUnion(a, b)
		if AABBUnion(b, a) != u {
			t.Fatalf("Union should be order independent")
		}
		for j := 0; j < 10; j++ {
			if p := pointIn(a); !u.Contains(p) {
				t.Errorf("Union %v does not contain %v from first box", u, p)
			}
			if p := pointIn(b); !u.Contains(p) {
				t.Errorf("Union %v does not contain %v from second box", u, p)
			}
		}
	}
}

func TestAABB_UnionWithEmpty(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	if AABBUnion(EmptyAABB(), box) != box {
		t.Error("Union with empty box should be identity")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		expectMin float64
		expectMax float64
	}{
		{"through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true, 4, 6},
		{"negative direction", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true, 4, 6},
		{"miss to the side", NewRay(NewVec3(3, 0, -5), NewVec3(0, 0, 1)), false, 0, 0},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false, 0, 0},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true, 4, 6},
		{"axis aligned inside slab", NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 2)), true, 2, 3},
		{"axis aligned outside slab", NewRay(NewVec3(2, 0.5, -5), NewVec3(0, 0, 1)), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rayT := NewInterval(0.001, math.Inf(1))
			hit := box.Hit(tt.ray, &rayT)
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit)
			}
			if !hit {
				return
			}
			if math.Abs(rayT.Min-tt.expectMin) > 1e-9 || math.Abs(rayT.Max-tt.expectMax) > 1e-9 {
				t.Errorf("Expected narrowed window [%f, %f], got [%f, %f]",
					tt.expectMin, tt.expectMax, rayT.Min, rayT.Max)
			}
		})
	}
}

func TestAABB_HitRespectsIncomingWindow(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	// Closest hit so far lies in front of the box: nothing inside can be closer
	rayT := NewInterval(0.001, 3)
	if box.Hit(ray, &rayT) {
		t.Error("Expected box beyond the current closest hit to be rejected")
	}

	// Window already partially inside: only tightened, never widened
	rayT = NewInterval(4.5, 5.5)
	if !box.Hit(ray, &rayT) {
		t.Fatal("Expected hit with partially overlapping window")
	}
	if rayT.Min != 4.5 || rayT.Max != 5.5 {
		t.Errorf("Window should not widen, got [%f, %f]", rayT.Min, rayT.Max)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		max      Vec3
		expected int
	}{
		{NewVec3(5, 1, 1), 0},
		{NewVec3(1, 5, 1), 1},
		{NewVec3(1, 1, 5), 2},
		{NewVec3(1, 1, 1), 2},
	}
	for _, tt := range tests {
		box := NewAABBFromPoints(NewVec3(0, 0, 0), tt.max)
		if got := box.LongestAxis(); got != tt.expected {
			t.Errorf("Box to %v: expected axis %d, got %d", tt.max, tt.expected, got)
		}
	}
}

func TestAABB_Center(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 2, -4), NewVec3(2, 4, 0))
	if c := box.Center(); c != NewVec3(1, 3, -2) {
		t.Errorf("Expected center (1, 3, -2), got %v", c)
	}
}
