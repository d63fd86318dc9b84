package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/richinsley/godeskscene/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range a {
		if float32(math.Abs(float64(a[i]-b[i]))) > tol {
			return false
		}
	}
	return true
}

func TestIdentity(t *testing.T) {
	m := Compose(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{})
	assert.True(t, m.ApproxEqualThreshold(mgl32.Ident4(), eps))
}

func TestTranslationIsLastColumn(t *testing.T) {
	tr := mgl32.Vec3{7, -0.5, 4}
	m := Compose(mgl32.Vec3{1, 1, 1}, 0, 0, 0, tr)
	assert.Equal(t, mgl32.Vec4{7, -0.5, 4, 1}, m.Col(3))
}

func TestRotateYNinetyMapsXToNegativeZ(t *testing.T) {
	m := Compose(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	assert.True(t, vecNear(got, mgl32.Vec3{0, 0, -1}, eps), "got %v", got)
}

func TestRotateThenTranslate(t *testing.T) {
	// A rotated object still lands at its absolute position.
	m := Compose(mgl32.Vec3{2, 2, 2}, 30, 45, 60, mgl32.Vec3{-9.8, 0.2, 2.2})
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, m)
	assert.True(t, vecNear(origin, mgl32.Vec3{-9.8, 0.2, 2.2}, eps), "got %v", origin)
}

func TestOrderDistinguishesAlternatives(t *testing.T) {
	scale := mgl32.Vec3{2, 0.5, 3}
	rx, ry, rz := float32(-90), float32(45), float32(30)
	tr := mgl32.Vec3{1, 2, 3}
	probe := mgl32.Vec3{1, 1, 1}

	S := mgl32.Scale3D(scale[0], scale[1], scale[2])
	Rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rx))
	Ry := mgl32.HomogRotate3DY(mgl32.DegToRad(ry))
	Rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rz))
	T := mgl32.Translate3D(tr[0], tr[1], tr[2])

	got := mgl32.TransformCoordinate(probe, Compose(scale, rx, ry, rz, tr))
	want := mgl32.TransformCoordinate(probe, T.Mul4(Rz).Mul4(Ry).Mul4(Rx).Mul4(S))
	assert.True(t, vecNear(got, want, 1e-4))

	others := []mgl32.Mat4{
		T.Mul4(Rx).Mul4(Ry).Mul4(Rz).Mul4(S),
		S.Mul4(Rz).Mul4(Ry).Mul4(Rx).Mul4(T),
		T.Mul4(S).Mul4(Rz).Mul4(Ry).Mul4(Rx),
		Rz.Mul4(Ry).Mul4(Rx).Mul4(T).Mul4(S),
	}
	for i, o := range others {
		alt := mgl32.TransformCoordinate(probe, o)
		assert.False(t, vecNear(got, alt, 1e-3), "order %d matched %v", i, alt)
	}
}

func TestComposerPushesModelUniform(t *testing.T) {
	sink := shader.NewMemorySink()
	c := NewComposer(sink, "model")

	req := Request{Scale: mgl32.Vec3{15, 1, 5}, Translation: mgl32.Vec3{0, 0, 4}}
	m := c.Apply(req)

	got, ok := sink.Mat4("model")
	require.True(t, ok)
	assert.Equal(t, m, got)
	assert.Equal(t, req.Matrix(), got)
}

func TestProperty_ComposeMatchesStepwiseApplication(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	angle := gen.Float32Range(-360, 360)
	coord := gen.Float32Range(-20, 20)
	factor := gen.Float32Range(0.1, 10)

	properties.Property("scale, rotate X, Y, Z, then translate", prop.ForAll(
		func(sx, sy, sz, rx, ry, rz, tx, ty, tz float32) bool {
			probe := mgl32.Vec3{0.3, -1.2, 2.5}
			got := mgl32.TransformCoordinate(probe, Compose(mgl32.Vec3{sx, sy, sz}, rx, ry, rz, mgl32.Vec3{tx, ty, tz}))

			p := mgl32.Vec3{probe[0] * sx, probe[1] * sy, probe[2] * sz}
			p = mgl32.Rotate3DX(mgl32.DegToRad(rx)).Mul3x1(p)
			p = mgl32.Rotate3DY(mgl32.DegToRad(ry)).Mul3x1(p)
			p = mgl32.Rotate3DZ(mgl32.DegToRad(rz)).Mul3x1(p)
			p = p.Add(mgl32.Vec3{tx, ty, tz})

			return vecNear(got, p, 1e-3)
		},
		factor, factor, factor, angle, angle, angle, coord, coord, coord,
	))

	properties.TestingRun(t)
}
