package core

// minAxisExtent is the thinnest slab an AABB may have. Flat boxes are padded
// so the slab test never degenerates to a zero-width interval.
const minAxisExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates an AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates the AABB with opposite corners a and b
func NewAABBFromPoints(a, b Vec3) AABB {
	axis := func(p, q float64) Interval {
		if p <= q {
			return Interval{Min: p, Max: q}
		}
		return Interval{Min: q, Max: p}
	}
	return NewAABB(axis(a.X, b.X), axis(a.Y, b.Y), axis(a.Z, b.Z))
}

// AABBUnion returns the tightest AABB enclosing both a and b
func AABBUnion(a, b AABB) AABB {
	return AABB{
		X: IntervalUnion(a.X, b.X),
		Y: IntervalUnion(a.Y, b.Y),
		Z: IntervalUnion(a.Z, b.Z),
	}
}

// EmptyAABB bounds nothing and is the identity for AABBUnion
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABBUnion(aabb, other)
}

// AxisInterval returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) AxisInterval(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// IsEmpty reports whether any axis of the box is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Hit tests the ray against the box using the slab method.
//
// rayT is narrowed in place to the part of the incoming window that lies
// inside the box. Callers that must keep their window intact pass a copy.
// A zero direction component divides to ±Inf, which the comparisons below
// handle without special cases.
func (aabb AABB) Hit(ray Ray, rayT *Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := aabb.AxisInterval(axis)
		adinv := 1.0 / ray.Direction.Get(axis)
		origin := ray.Origin.Get(axis)

		t0 := (ax.Min - origin) * adinv
		t1 := (ax.Max - origin) * adinv

		if t0 < t1 {
			if t0 > rayT.Min {
				rayT.Min = t0
			}
			if t1 < rayT.Max {
				rayT.Max = t1
			}
		} else {
			if t1 > rayT.Min {
				rayT.Min = t1
			}
			if t0 < rayT.Max {
				rayT.Max = t0
			}
		}

		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	if aabb.X.Size() > aabb.Y.Size() {
		if aabb.X.Size() > aabb.Z.Size() {
			return 0
		}
		return 2
	}
	if aabb.Y.Size() > aabb.Z.Size() {
		return 1
	}
	return 2
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return NewVec3(
		(aabb.X.Min+aabb.X.Max)*0.5,
		(aabb.Y.Min+aabb.Y.Max)*0.5,
		(aabb.Z.Min+aabb.Z.Max)*0.5,
	)
}

// Contains reports whether p lies inside the box (inclusive)
func (aabb AABB) Contains(p Vec3) bool {
	return aabb.X.Contains(p.X) && aabb.Y.Contains(p.Y) && aabb.Z.Contains(p.Z)
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() < minAxisExtent {
		aabb.X = aabb.X.Expand(minAxisExtent)
	}
	if aabb.Y.Size() < minAxisExtent {
		aabb.Y = aabb.Y.Expand(minAxisExtent)
	}
	if aabb.Z.Size() < minAxisExtent {
		aabb.Z = aabb.Z.Expand(minAxisExtent)
	}
}
