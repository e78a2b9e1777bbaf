package geometry

import (
	"sort"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either further nodes or the primitives themselves. A range
// holding a single primitive stores it as both children.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVH constructs a BVH over objects. The caller's slice is not reordered.
// An empty input yields a node that is never hit.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB()}
	}

	// Construction sorts in place, so work on a copy
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList constructs a BVH over the objects of a list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects())
}

// buildBVH recursively splits objects at the midpoint after sorting them
// along the longest axis of their combined bounding box
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB()
	for _, object := range objects {
		bbox = core.AABBUnion(bbox, object.BoundingBox())
	}

	switch len(objects) {
	case 1:
		return &BVHNode{Left: objects[0], Right: objects[0], bbox: bbox}
	case 2:
		return &BVHNode{Left: objects[0], Right: objects[1], bbox: bbox}
	}

	axis := bbox.LongestAxis()
	sortByBoxMin(objects, axis)

	mid := len(objects) / 2
	return &BVHNode{
		Left:  buildBVH(objects[:mid]),
		Right: buildBVH(objects[mid:]),
		bbox:  bbox,
	}
}

// sortByBoxMin orders objects by the lower edge of their bounding boxes along axis
func sortByBoxMin(objects []Hittable, axis int) {
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})
}

// Hit tests if a ray intersects any object in the BVH
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if n.Left == nil {
		return nil, false
	}

	// The box test narrows its own copy of the window
	boxT := rayT
	if !n.bbox.Hit(ray, &boxT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT)

	// Anything on the right must be closer than the left hit
	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the overall bounding box of the BVH
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes     int     // Interior nodes
	LeafReferences int     // Primitive references, counting replicated single-object leaves twice
	MaxDepth       int     // Deepest primitive reference
	AvgDepth       float64 // Mean depth of primitive references
}

// Stats returns statistics about the BVH structure
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	if n.Left == nil {
		return stats
	}

	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafReferences > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafReferences)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.LeafReferences++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
