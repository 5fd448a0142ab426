package scene

import (
	"math"
	"sort"
	"time"

	"github.com/achilleasa/whitted/log"
	"github.com/achilleasa/whitted/types"
)

// The default max number of triangles stored in a BVH leaf.
const DefaultBvhLeafSize = 8

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// BVH build statistics.
type BvhStats struct {
	Triangles int
	Nodes     int
	Leafs     int
	MaxDepth  int
	BuildTime time.Duration
}

type bvhBuilder struct {
	logger log.Logger

	triangles []Triangle

	// Per-triangle centers used as sort keys.
	centers []types.Vec3

	// Nodes holding at most this many triangles become leafs.
	leafSize int

	stats BvhStats
}

// Construct a BVH over a copy of the supplied triangle list.
//
// The builder recursively splits the triangle list at its median along the
// longest axis of the node bbox after sorting triangles by their center.
// Nodes with at most leafSize triangles become leafs. The build is fully
// deterministic; the same input always yields the same tree.
func BuildBvh(triangles []Triangle, leafSize int) *Bvh {
	if leafSize <= 0 {
		leafSize = DefaultBvhLeafSize
	}

	b := &bvhBuilder{
		logger:    log.New("bvh builder"),
		triangles: append([]Triangle(nil), triangles...),
		centers:   make([]types.Vec3, len(triangles)),
		leafSize:  leafSize,
		stats: BvhStats{
			Triangles: len(triangles),
		},
	}

	bvh := &Bvh{Triangles: b.triangles}
	if len(triangles) == 0 {
		bvh.Stats = b.stats
		return bvh
	}

	workList := make([]int, len(triangles))
	for index := range b.triangles {
		workList[index] = index
		b.centers[index] = b.triangles[index].Center()
	}

	start := time.Now()
	bvh.Root = b.partition(workList, 0)
	b.stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, triangles: %d, maxDepth: %d, nodes: %d, leafs: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.Triangles, b.stats.MaxDepth, b.stats.Nodes, b.stats.Leafs,
	)

	bvh.Stats = b.stats
	return bvh
}

// Partition worklist and return the subtree root.
func (b *bvhBuilder) partition(workList []int, depth int) *BvhNode {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}
	b.stats.Nodes++

	node := &BvhNode{
		BBox: AABB{
			types.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
			types.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64},
		},
	}

	// Calculate bounding box for node
	for _, index := range workList {
		itemBBox := b.triangles[index].BBox()
		node.BBox[0] = types.MinVec3(node.BBox[0], itemBBox[0])
		node.BBox[1] = types.MaxVec3(node.BBox[1], itemBBox[1])
	}

	// Do we have enough items for partitioning? If not create a leaf
	if len(workList) <= b.leafSize {
		node.Items = workList
		b.stats.Leafs++
		return node
	}

	axis := longestAxis(node.BBox)
	sort.SliceStable(workList, func(i, j int) bool {
		return b.centers[workList[i]][axis] < b.centers[workList[j]][axis]
	})

	mid := len(workList) / 2
	node.Left = b.partition(workList[:mid], depth+1)
	node.Right = b.partition(workList[mid:], depth+1)
	return node
}

func longestAxis(box AABB) Axis {
	side := box[1].Sub(box[0])
	switch {
	case side[0] >= side[1] && side[0] >= side[2]:
		return XAxis
	case side[1] >= side[2]:
		return YAxis
	}
	return ZAxis
}
