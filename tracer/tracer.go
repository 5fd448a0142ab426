package tracer

import (
	"fmt"
	"math"

	"github.com/achilleasa/whitted/scene"
	"github.com/achilleasa/whitted/types"
)

// Shadow rays towards directional lights are bounded by this distance.
const directionalShadowDist = 1e9

// Tracer options.
type Options struct {
	// Color returned for rays that escape the scene.
	Background types.Color

	// Threshold for treating near-zero quantities as zero. Also used as the
	// t_min of shadow and reflection rays.
	Epsilon float64

	// Max number of reflection bounces.
	MaxDepth int
}

// A recursive ray tracer that evaluates local illumination with hard shadows
// and mirror reflections. A Tracer only reads its scene so a single instance
// can serve any number of goroutines.
type Tracer struct {
	scene *scene.Scene
	opts  Options
}

// Create a new tracer for the given scene.
func New(sc *scene.Scene, opts Options) *Tracer {
	return &Tracer{
		scene: sc,
		opts:  opts,
	}
}

// Get the tracer options.
func (tr *Tracer) Options() Options {
	return tr.opts
}

// Trace the ray (o + t*d) within [tMin, tMax) and return its color. Depth is
// the number of reflection bounces that may still be traced.
func (tr *Tracer) TraceRay(o, d types.Vec3, tMin, tMax float64, depth int) types.Color {
	hit := tr.scene.ClosestHit(o, d, tMin, tMax, tr.opts.Epsilon)
	if !hit.Valid() {
		return tr.opts.Background
	}

	p := o.Add(d.Mul(hit.T))
	n := tr.surfaceNormal(hit, p, d)
	v := d.Neg()
	mat := tr.scene.Material(hit)

	baseColor := mat.Color
	if hit.Type == scene.WallPrimitive {
		wall := &tr.scene.Walls[hit.Index]
		if wall.Checkerboard && wall.OddTile(p) {
			baseColor = baseColor.Scale(0.5)
		}
	}
	localColor := baseColor.Scale(tr.ComputeLighting(p, n, v, mat.Specular))

	if depth <= 0 || mat.Reflectivity <= 0 {
		return localColor
	}

	r := reflect(v, n)
	reflectedColor := tr.TraceRay(p, r, tr.opts.Epsilon, math.Inf(1), depth-1)
	return localColor.Blend(reflectedColor, mat.Reflectivity)
}

// Calculate the light intensity reaching point p with normal n as seen from
// direction v. The result is not clamped.
func (tr *Tracer) ComputeLighting(p, n, v types.Vec3, specular int) float64 {
	var intensity float64

	for _, light := range tr.scene.Lights {
		var l types.Vec3
		var shadowDist float64

		switch light.Type {
		case scene.AmbientLight:
			intensity += light.Intensity
			continue
		case scene.PointLight:
			l = light.Position.Sub(p)
			shadowDist = 1
		case scene.DirectionalLight:
			l = light.Direction
			shadowDist = directionalShadowDist
		default:
			panic(fmt.Sprintf("tracer: no lighting rule for light type %s", light.Type))
		}

		if tr.scene.AnyHit(p, l, tr.opts.Epsilon, shadowDist, tr.opts.Epsilon) {
			continue
		}

		// Diffuse
		nDotL := n.Dot(l)
		if nDotL > 0 {
			intensity += light.Intensity * nDotL / (n.Len() * l.Len())
		}

		// Specular
		if specular != scene.NoSpecular {
			r := reflect(l, n)
			rDotV := r.Dot(v)
			if rDotV > 0 {
				intensity += light.Intensity * math.Pow(rDotV/(r.Len()*v.Len()), float64(specular))
			}
		}
	}

	return intensity
}

// Calculate the surface normal at hit point p for a ray with direction d.
func (tr *Tracer) surfaceNormal(hit scene.Hit, p, d types.Vec3) types.Vec3 {
	switch hit.Type {
	case scene.SpherePrimitive:
		return p.Sub(tr.scene.Spheres[hit.Index].Center).Normalize()
	case scene.WallPrimitive:
		return tr.scene.Walls[hit.Index].Normal
	case scene.TrianglePrimitive:
		n := tr.scene.Bvh.Triangles[hit.Index].Normal()
		if n.Dot(d) > 0 {
			n = n.Neg()
		}
		return n
	default:
		panic(fmt.Sprintf("tracer: no normal rule for primitive type %s", hit.Type))
	}
}

// Mirror v around n.
func reflect(v, n types.Vec3) types.Vec3 {
	return n.Mul(2 * n.Dot(v)).Sub(v)
}
