package shader

import "github.com/go-gl/mathgl/mgl32"

// Sink accepts named uniform writes. Names are not checked against the
// program: a write to a uniform the program does not declare is dropped.
type Sink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
	SetSampler2D(name string, unit int32)
}
