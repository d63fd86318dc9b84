package meshes

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is position(3) + normal(3) + texcoord(2).
const FloatsPerVertex = 8

// defaultSegments is the tessellation of round shapes around their axis.
const defaultSegments = 36

// Geometry is interleaved vertex data and triangle indices.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i.
func (g *Geometry) Position(i int) mgl32.Vec3 {
	o := i * FloatsPerVertex
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (g *Geometry) Normal(i int) mgl32.Vec3 {
	o := i*FloatsPerVertex + 3
	return mgl32.Vec3{g.Vertices[o], g.Vertices[o+1], g.Vertices[o+2]}
}

func (g *Geometry) vertex(p, n mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(g.VertexCount())
	g.Vertices = append(g.Vertices, p[0], p[1], p[2], n[0], n[1], n[2], u, v)
	return idx
}

func (g *Geometry) tri(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// quad adds a planar quad from corner o spanned by du and dv. The winding is
// counter-clockwise seen from the side the normal du x dv points to.
func (g *Geometry) quad(o, du, dv mgl32.Vec3, uv0, uv1 mgl32.Vec2) {
	n := du.Cross(dv).Normalize()
	a := g.vertex(o, n, uv0[0], uv0[1])
	b := g.vertex(o.Add(du), n, uv1[0], uv0[1])
	c := g.vertex(o.Add(du).Add(dv), n, uv1[0], uv1[1])
	d := g.vertex(o.Add(dv), n, uv0[0], uv1[1])
	g.tri(a, b, c)
	g.tri(a, c, d)
}

// Plane is a 2x2 square in the XZ plane facing +Y.
func Plane() *Geometry {
	g := &Geometry{}
	g.quad(mgl32.Vec3{-1, 0, 1}, mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 0, -2}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1})
	return g
}

// boxFaces adds the six faces of a unit cube centered on the origin.
// sideUV is the texture window used on the four vertical faces.
func boxFaces(g *Geometry, sideUV0, sideUV1 mgl32.Vec2) {
	full0, full1 := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}
	// +Z, -Z, +X, -X
	g.quad(mgl32.Vec3{-0.5, -0.5, 0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, sideUV0, sideUV1)
	g.quad(mgl32.Vec3{0.5, -0.5, -0.5}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, sideUV0, sideUV1)
	g.quad(mgl32.Vec3{0.5, -0.5, 0.5}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, sideUV0, sideUV1)
	g.quad(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, sideUV0, sideUV1)
	// +Y, -Y
	g.quad(mgl32.Vec3{-0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, full0, full1)
	g.quad(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, full0, full1)
}

// Box is a unit cube centered on the origin with the full texture on every
// face.
func Box() *Geometry {
	g := &Geometry{}
	boxFaces(g, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1})
	return g
}

// Box2 is a unit cube whose vertical faces sample only the bottom edge strip
// of the texture, so thin slabs like a notebook keep an undistorted top.
func Box2() *Geometry {
	g := &Geometry{}
	boxFaces(g, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0.05})
	return g
}

// Cylinder has radius 1 and spans y = 0..1, capped at both ends.
func Cylinder() *Geometry {
	return cylinder(defaultSegments)
}

func cylinder(segments int) *Geometry {
	g := &Geometry{}
	ring(g, segments, 0, 1, 1, 1)
	disc(g, segments, 0, -1)
	disc(g, segments, 1, 1)
	return g
}

// Cone has a base of radius 1 at y = 0 and its apex at y = 1.
func Cone() *Geometry {
	g := &Geometry{}
	ring(g, defaultSegments, 0, 1, 1, 0)
	disc(g, defaultSegments, 0, -1)
	return g
}

// ring adds the side wall between y0 (radius r0) and y1 (radius r1).
func ring(g *Geometry, segments int, y0, y1, r0, r1 float32) {
	slope := (r0 - r1) / (y1 - y0)
	base := uint32(g.VertexCount())
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		theta := float64(u) * 2 * math.Pi
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		n := mgl32.Vec3{c, slope, s}.Normalize()
		g.vertex(mgl32.Vec3{r0 * c, y0, r0 * s}, n, u, 0)
		g.vertex(mgl32.Vec3{r1 * c, y1, r1 * s}, n, u, 1)
	}
	for i := 0; i < segments; i++ {
		a := base + uint32(i*2)
		g.tri(a, a+1, a+3)
		g.tri(a, a+3, a+2)
	}
}

// disc adds a disc of radius 1 at height y facing ny (+1 up, -1 down).
func disc(g *Geometry, segments int, y, ny float32) {
	n := mgl32.Vec3{0, ny, 0}
	center := g.vertex(mgl32.Vec3{0, y, 0}, n, 0.5, 0.5)
	first := uint32(g.VertexCount())
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		g.vertex(mgl32.Vec3{c, y, s}, n, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := uint32(0); i < uint32(segments); i++ {
		if ny > 0 {
			g.tri(center, first+i+1, first+i)
		} else {
			g.tri(center, first+i, first+i+1)
		}
	}
}

// Prism is a triangular prism of unit height along Y: an equilateral-ish
// triangle (-0.5,-0.5) (0.5,-0.5) (0,0.5) in XY extruded over z = -0.5..0.5.
func Prism() *Geometry {
	g := &Geometry{}
	a := mgl32.Vec3{-0.5, -0.5, 0.5}
	b := mgl32.Vec3{0.5, -0.5, 0.5}
	c := mgl32.Vec3{0, 0.5, 0.5}
	back := mgl32.Vec3{0, 0, -1}

	front := mgl32.Vec3{0, 0, 1}
	ia := g.vertex(a, front, 0, 0)
	ib := g.vertex(b, front, 1, 0)
	ic := g.vertex(c, front, 0.5, 1)
	g.tri(ia, ib, ic)

	ja := g.vertex(a.Add(back), back, 1, 0)
	jb := g.vertex(b.Add(back), back, 0, 0)
	jc := g.vertex(c.Add(back), back, 0.5, 1)
	g.tri(ja, jc, jb)

	// side walls, each spanned from one front edge backwards
	for _, e := range [][2]mgl32.Vec3{{a, b}, {b, c}, {c, a}} {
		g.quad(e[0], back, e[1].Sub(e[0]), mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1})
	}
	return g
}

// Torus lies in the XY plane around the Z axis with a major radius of 1 and a
// tube radius of 0.2.
func Torus() *Geometry {
	return torus(1, 0.2, defaultSegments, 18)
}

func torus(major, minor float32, segments, sides int) *Geometry {
	g := &Geometry{}
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		phi := float64(u) * 2 * math.Pi
		cp, sp := float32(math.Cos(phi)), float32(math.Sin(phi))
		for j := 0; j <= sides; j++ {
			v := float32(j) / float32(sides)
			theta := float64(v) * 2 * math.Pi
			ct, st := float32(math.Cos(theta)), float32(math.Sin(theta))
			n := mgl32.Vec3{ct * cp, ct * sp, st}
			p := mgl32.Vec3{(major + minor*ct) * cp, (major + minor*ct) * sp, minor * st}
			g.vertex(p, n, u, v)
		}
	}
	stride := uint32(sides + 1)
	for i := uint32(0); i < uint32(segments); i++ {
		for j := uint32(0); j < uint32(sides); j++ {
			a := i*stride + j
			b := (i+1)*stride + j
			g.tri(a, b, b+1)
			g.tri(a, b+1, a+1)
		}
	}
	return g
}
