package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/binding"
	"github.com/richinsley/godeskscene/options"
	"github.com/richinsley/godeskscene/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera(orbit bool) Camera {
	return NewCamera(options.CameraOptions{
		Eye:        [3]float32{0, 0, 10},
		Target:     [3]float32{0, 0, 0},
		FOV:        45,
		OrbitSpeed: 90,
	}, orbit)
}

func TestStaticCameraIgnoresTime(t *testing.T) {
	cam := testCamera(false)
	assert.Equal(t, mgl32.Vec3{0, 0, 10}, cam.EyeAt(3.5))
}

func TestOrbitTurnsAboutY(t *testing.T) {
	cam := testCamera(true)
	// 90 degrees per second: a quarter turn carries +Z to +X
	eye := cam.EyeAt(1)
	assert.InDelta(t, 10, eye.X(), 1e-4)
	assert.InDelta(t, 0, eye.Y(), 1e-4)
	assert.InDelta(t, 0, eye.Z(), 1e-4)

	// distance to the target is preserved
	for _, tm := range []float64{0.3, 1.7, 12} {
		assert.InDelta(t, 10, cam.EyeAt(tm).Sub(cam.Target).Len(), 1e-3)
	}
}

func TestViewMapsTargetToCenter(t *testing.T) {
	cam := testCamera(false)
	view, eye := cam.View(0)
	assert.Equal(t, cam.Eye, eye)
	p := mgl32.TransformCoordinate(cam.Target, view)
	assert.InDelta(t, 0, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
	assert.InDelta(t, -10, p.Z(), 1e-5)
}

func TestProjectionAspect(t *testing.T) {
	cam := testCamera(false)
	wide := cam.Projection(1600, 800)
	square := cam.Projection(800, 800)
	assert.InDelta(t, square.At(0, 0)/2, wide.At(0, 0), 1e-5)
	assert.Equal(t, square, cam.Projection(800, 0))
}

func TestApplyWritesCameraUniforms(t *testing.T) {
	sink := shader.NewMemorySink()
	d := binding.NewDispatcher(sink, nil, nil)
	cam := testCamera(false)
	cam.Apply(d, 0, 640, 480)

	eye, ok := sink.Vec3(binding.UniformViewPosition)
	require.True(t, ok)
	assert.Equal(t, cam.Eye, eye)
	_, ok = sink.Mat4(binding.UniformView)
	assert.True(t, ok)
	proj, ok := sink.Mat4(binding.UniformProjection)
	require.True(t, ok)
	assert.Equal(t, cam.Projection(640, 480), proj)
}
