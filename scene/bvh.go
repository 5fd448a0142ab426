package scene

import "github.com/achilleasa/whitted/types"

// A BVH node. Leaf nodes reference triangles by their index in the owning
// Bvh's triangle list; internal nodes have exactly two children. The node
// bbox always encloses all triangles reachable beneath it.
type BvhNode struct {
	BBox AABB

	Left  *BvhNode
	Right *BvhNode

	Items []int
}

// Returns true if this is a leaf node.
func (n *BvhNode) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Bvh is an immutable bounding volume hierarchy over a triangle list. It is
// safe for concurrent use by multiple goroutines.
type Bvh struct {
	Triangles []Triangle
	Root      *BvhNode
	Stats     BvhStats
}

// Find the closest triangle hit with t in [tMin, tMax). Hits at the same t
// resolve to the triangle with the lowest index so results match a linear
// scan of the triangle list.
func (b *Bvh) ClosestHit(o, d types.Vec3, tMin, tMax, eps float64) Hit {
	closest := noHit()
	if b == nil || b.Root == nil {
		return closest
	}
	b.closestHit(b.Root, o, d, tMin, tMax, eps, &closest)
	return closest
}

func (b *Bvh) closestHit(node *BvhNode, o, d types.Vec3, tMin, tMax, eps float64, closest *Hit) {
	// The box test includes closest.T so that equal-t hits with a lower
	// index can still replace the current best.
	boxTMax := tMax
	if closest.Valid() {
		boxTMax = closest.T
	}
	if !node.BBox.Hit(o, d, tMin, boxTMax) {
		return
	}

	if node.IsLeaf() {
		for _, index := range node.Items {
			t, ok := b.Triangles[index].Intersect(o, d, eps)
			if !ok || t < tMin || t >= tMax {
				continue
			}
			if t < closest.T || (t == closest.T && index < closest.Index) {
				*closest = Hit{Type: TrianglePrimitive, Index: index, T: t}
			}
		}
		return
	}

	b.closestHit(node.Left, o, d, tMin, tMax, eps, closest)
	b.closestHit(node.Right, o, d, tMin, tMax, eps, closest)
}

// Returns true if any triangle is hit with t in [tMin, tMax).
func (b *Bvh) AnyHit(o, d types.Vec3, tMin, tMax, eps float64) bool {
	if b == nil || b.Root == nil {
		return false
	}
	return b.anyHit(b.Root, o, d, tMin, tMax, eps)
}

func (b *Bvh) anyHit(node *BvhNode, o, d types.Vec3, tMin, tMax, eps float64) bool {
	if !node.BBox.Hit(o, d, tMin, tMax) {
		return false
	}

	if node.IsLeaf() {
		for _, index := range node.Items {
			if t, ok := b.Triangles[index].Intersect(o, d, eps); ok && t >= tMin && t < tMax {
				return true
			}
		}
		return false
	}

	return b.anyHit(node.Left, o, d, tMin, tMax, eps) || b.anyHit(node.Right, o, d, tMin, tMax, eps)
}
