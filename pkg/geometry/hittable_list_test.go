package geometry

import (
	"math"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
)

func TestHittableList_ClosestHitWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)

	// Insertion order must not matter
	for _, list := range []*HittableList{NewHittableList(near, far), NewHittableList(far, near)} {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		hit, isHit := list.Hit(ray, forwardT)
		if !isHit {
			t.Fatal("Expected hit")
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("Expected t=1.5, got %f", hit.T)
		}
	}
}

func TestHittableList_EmptyNeverHits(t *testing.T) {
	list := NewHittableList()
	if _, isHit := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), forwardT); isHit {
		t.Error("Expected empty list to miss")
	}
	if !list.BoundingBox().IsEmpty() {
		t.Errorf("Expected empty bounding box, got %v", list.BoundingBox())
	}
}

func TestHittableList_BoundingBoxAndClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(-3, 0, 0), 1, nil))
	list.Add(NewSphere(core.NewVec3(4, 1, 0), 2, nil))

	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}

	box := list.BoundingBox()
	if box.X.Min != -4 || box.X.Max != 6 || box.Y.Min != -1 || box.Y.Max != 3 {
		t.Errorf("Unexpected bounding box %v", box)
	}

	list.Clear()
	if list.Len() != 0 || !list.BoundingBox().IsEmpty() {
		t.Errorf("Expected cleared list, got %d objects and box %v", list.Len(), list.BoundingBox())
	}
}
