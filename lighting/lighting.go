// Package lighting writes the scene's fixed light setup into shader uniforms.
package lighting

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/shader"
)

var ErrTooManyPointLights = errors.New("too many point lights")

// DirectionalLight shines along Direction with no attenuation, like the sun.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// PointLight is an omnidirectional light at Position.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Rig is the complete light setup: at most one directional light and
// shader.MaxPointLights point lights.
type Rig struct {
	Directional *DirectionalLight
	Points      []PointLight
}

// Apply writes every light uniform. Unused point light slots are switched
// off so stale values from another rig cannot leak through.
func (r Rig) Apply(sink shader.Sink) error {
	if len(r.Points) > shader.MaxPointLights {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPointLights, len(r.Points), shader.MaxPointLights)
	}

	if d := r.Directional; d != nil {
		sink.SetVec3("directionalLight.direction", d.Direction)
		sink.SetVec3("directionalLight.ambient", d.Ambient)
		sink.SetVec3("directionalLight.diffuse", d.Diffuse)
		sink.SetVec3("directionalLight.specular", d.Specular)
		sink.SetBool("directionalLight.bActive", true)
	} else {
		sink.SetBool("directionalLight.bActive", false)
	}

	for i := 0; i < shader.MaxPointLights; i++ {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		if i >= len(r.Points) {
			sink.SetBool(prefix+"bActive", false)
			continue
		}
		p := r.Points[i]
		sink.SetVec3(prefix+"position", p.Position)
		sink.SetVec3(prefix+"ambient", p.Ambient)
		sink.SetVec3(prefix+"diffuse", p.Diffuse)
		sink.SetVec3(prefix+"specular", p.Specular)
		sink.SetBool(prefix+"bActive", true)
	}

	sink.SetBool("bUseLighting", true)
	return nil
}

// DeskRig is a warm overhead point light plus a bright sun from the upper left.
func DeskRig() Rig {
	return Rig{
		Directional: &DirectionalLight{
			Direction: mgl32.Vec3{-5, -5, -4},
			Ambient:   mgl32.Vec3{0.8, 0.8, 0.8},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:  mgl32.Vec3{0.6, 0.6, 0.6},
		},
		Points: []PointLight{
			{
				Position: mgl32.Vec3{0, 8, 1},
				Ambient:  mgl32.Vec3{0.4, 0.4, 0.3},
				Diffuse:  mgl32.Vec3{0.8, 0.8, 0.7},
				Specular: mgl32.Vec3{0.9, 0.9, 0.8},
			},
		},
	}
}
