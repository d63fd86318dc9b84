// Package graphics abstracts the window or surface the scene renders into.
package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	// IsGLES reports whether shaders must target GLSL ES 3.00.
	IsGLES() bool
}
