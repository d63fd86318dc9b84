// Package transform builds model matrices from scale, Euler angles and a
// translation.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/shader"
)

// Request is a single object placement. Rotation is in degrees about X, Y, Z.
type Request struct {
	Scale       mgl32.Vec3
	Rotation    mgl32.Vec3
	Translation mgl32.Vec3
}

// Compose returns T * Rz * Ry * Rx * S. Points are scaled, rotated about X,
// then Y, then Z, and translated last.
func Compose(scale mgl32.Vec3, rotX, rotY, rotZ float32, translate mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotY))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZ))
	t := mgl32.Translate3D(translate[0], translate[1], translate[2])
	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// Matrix composes the request.
func (r Request) Matrix() mgl32.Mat4 {
	return Compose(r.Scale, r.Rotation[0], r.Rotation[1], r.Rotation[2], r.Translation)
}

// Composer writes composed matrices to a uniform.
type Composer struct {
	sink    shader.Sink
	uniform string
}

// NewComposer returns a Composer that writes to the named mat4 uniform.
func NewComposer(sink shader.Sink, uniform string) *Composer {
	return &Composer{sink: sink, uniform: uniform}
}

// Apply composes req, pushes it to the sink and returns it.
func (c *Composer) Apply(req Request) mgl32.Mat4 {
	m := req.Matrix()
	c.sink.SetMat4(c.uniform, m)
	return m
}
