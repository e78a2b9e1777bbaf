package geometry

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// HittableList is an unordered collection of objects tested one by one
type HittableList struct {
	objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB()}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the list's bounding box to include it
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = core.AABBUnion(l.bbox, object.BoundingBox())
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.objects = nil
	l.bbox = core.EmptyAABB()
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Objects returns the list's objects. The slice is shared with the list.
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}
