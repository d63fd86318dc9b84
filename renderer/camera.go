package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/binding"
	"github.com/richinsley/godeskscene/options"
)

const (
	nearPlane = 0.1
	farPlane  = 100
)

// Camera is a perspective look-at camera that can turn around its target.
type Camera struct {
	Eye        mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	FOV        float32 // vertical, degrees
	Orbit      bool
	OrbitSpeed float32 // degrees per second about +Y
}

func NewCamera(o options.CameraOptions, orbit bool) Camera {
	return Camera{
		Eye:        mgl32.Vec3(o.Eye),
		Target:     mgl32.Vec3(o.Target),
		Up:         mgl32.Vec3{0, 1, 0},
		FOV:        o.FOV,
		Orbit:      orbit,
		OrbitSpeed: o.OrbitSpeed,
	}
}

// EyeAt returns the eye position t seconds into the animation.
func (c Camera) EyeAt(t float64) mgl32.Vec3 {
	if !c.Orbit {
		return c.Eye
	}
	angle := mgl32.DegToRad(c.OrbitSpeed * float32(t))
	offset := mgl32.Rotate3DY(angle).Mul3x1(c.Eye.Sub(c.Target))
	return c.Target.Add(offset)
}

// View returns the view matrix and the eye position at time t.
func (c Camera) View(t float64) (mgl32.Mat4, mgl32.Vec3) {
	eye := c.EyeAt(t)
	return mgl32.LookAtV(eye, c.Target, c.Up), eye
}

func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, nearPlane, farPlane)
}

// Apply writes view, projection and eye position for a width x height frame.
func (c Camera) Apply(d *binding.Dispatcher, t float64, width, height int) {
	view, eye := c.View(t)
	d.SetCamera(view, c.Projection(width, height), eye)
}
