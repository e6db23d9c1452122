package viz

import (
	"math"
	"sort"

	"github.com/gokturkdogan/journey/internal/camera"
	"github.com/gokturkdogan/journey/internal/geom"
)

// Projector maps world points onto canvas sub-pixels through the
// camera rig's transform. The view basis is rebuilt from the rig every
// frame, so the terminal camera is an exact function of the rig.
type Projector struct {
	FOV  float64 // vertical field of view, radians
	Near float64
}

func NewProjector() *Projector {
	return &Projector{FOV: math.Pi / 3, Near: 0.1}
}

// Project returns sub-pixel coordinates, view depth, and visibility
// for a world point.
func (p *Projector) Project(world geom.Vec3, cam camera.Transform, c *Canvas) (int, int, float64, bool) {
	fwd := cam.LookAt.Sub(cam.Position).Normalize()
	if fwd == (geom.Vec3{}) {
		return 0, 0, 0, false
	}
	right := fwd.Cross(geom.Vec3{Y: 1}).Normalize()
	if right == (geom.Vec3{}) {
		// Looking straight up or down; pick an arbitrary right axis.
		right = geom.Vec3{X: 1}
	}
	up := right.Cross(fwd)

	rel := world.Sub(cam.Position)
	cx := rel.Dot(right)
	cy := rel.Dot(up)
	cz := rel.Dot(fwd)
	if cz <= p.Near {
		return 0, 0, cz, false
	}

	pw, ph := c.PixelSize()
	focal := float64(ph) / (2 * math.Tan(p.FOV/2))
	sx := int(cx/cz*focal) + pw/2
	sy := int(-cy/cz*focal) + ph/2
	visible := sx >= 0 && sx < pw && sy >= 0 && sy < ph
	return sx, sy, cz, visible
}

// Edge is one world-space line segment of the scene.
type Edge struct {
	A, B geom.Vec3
}

// Scene collects edges for one frame and draws them back to front.
type Scene struct {
	edges []Edge
}

func (s *Scene) Add(a, b geom.Vec3)   { s.edges = append(s.edges, Edge{a, b}) }
func (s *Scene) AddPoint(p geom.Vec3) { s.edges = append(s.edges, Edge{p, p}) }
func (s *Scene) Reset()               { s.edges = s.edges[:0] }

type projected struct {
	x0, y0, x1, y1 int
	depth          float64
}

// Render projects and draws every edge using a painter's ordering.
func (s *Scene) Render(c *Canvas, proj *Projector, cam camera.Transform) {
	out := make([]projected, 0, len(s.edges))
	for _, e := range s.edges {
		x0, y0, d0, v0 := proj.Project(e.A, cam, c)
		x1, y1, d1, v1 := proj.Project(e.B, cam, c)
		if !v0 && !v1 {
			continue
		}
		out = append(out, projected{x0, y0, x1, y1, (d0 + d1) / 2})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].depth > out[j].depth })
	for _, e := range out {
		if e.x0 == e.x1 && e.y0 == e.y1 {
			c.Set(e.x0, e.y0)
		} else {
			c.Line(e.x0, e.y0, e.x1, e.y1)
		}
	}
}
