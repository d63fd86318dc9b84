// Package binding pushes per-draw texture, material, color and transform
// choices into a shader program's uniforms.
package binding

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/materials"
	"github.com/richinsley/godeskscene/shader"
	"github.com/richinsley/godeskscene/textures"
	"github.com/richinsley/godeskscene/transform"
)

// Uniform names written by the dispatcher.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"
	UniformColor        = "objectColor"
	UniformTexture      = "objectTexture"
	UniformUseTexture   = "bUseTexture"
	UniformUseLighting  = "bUseLighting"
	UniformUVScale      = "UVscale"

	UniformMaterialAmbientColor    = "material.ambientColor"
	UniformMaterialAmbientStrength = "material.ambientStrength"
	UniformMaterialDiffuseColor    = "material.diffuseColor"
	UniformMaterialSpecularColor   = "material.specularColor"
	UniformMaterialShininess       = "material.shininess"
)

// NoTextureUnit is written to the sampler when a texture tag is unknown.
const NoTextureUnit int32 = -1

// TextureLookup resolves a texture tag to its unit.
type TextureLookup interface {
	FindSlot(tag string) (int, bool)
}

// MaterialLookup resolves a material tag.
type MaterialLookup interface {
	Find(tag string) (materials.Material, bool)
	Len() int
}

// Dispatcher is the only writer of per-draw uniforms. The last value written
// wins; nothing is reset between draws.
type Dispatcher struct {
	sink      shader.Sink
	textures  TextureLookup
	materials MaterialLookup
	composer  *transform.Composer
}

var (
	_ TextureLookup  = (*textures.Registry)(nil)
	_ MaterialLookup = (*materials.Table)(nil)
)

func NewDispatcher(sink shader.Sink, tex TextureLookup, mats MaterialLookup) *Dispatcher {
	return &Dispatcher{
		sink:      sink,
		textures:  tex,
		materials: mats,
		composer:  transform.NewComposer(sink, UniformModel),
	}
}

// SetColor switches the next draw to a flat color.
func (d *Dispatcher) SetColor(r, g, b, a float32) {
	d.sink.SetBool(UniformUseTexture, false)
	d.sink.SetVec4(UniformColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture switches the next draw to the texture registered under tag. An
// unknown tag binds NoTextureUnit.
func (d *Dispatcher) SetTexture(tag string) {
	d.sink.SetBool(UniformUseTexture, true)

	unit := NoTextureUnit
	if slot, ok := d.textures.FindSlot(tag); ok {
		unit = int32(slot)
	} else {
		slog.Debug("texture tag not found", "tag", tag)
	}
	d.sink.SetSampler2D(UniformTexture, unit)
}

func (d *Dispatcher) SetUVScale(u, v float32) {
	d.sink.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial writes the material registered under tag. If the table is
// empty or the tag is unknown nothing is written and the previous material
// uniforms stay in effect.
func (d *Dispatcher) SetMaterial(tag string) {
	if d.materials.Len() == 0 {
		return
	}
	m, ok := d.materials.Find(tag)
	if !ok {
		slog.Debug("material tag not found", "tag", tag)
		return
	}
	d.sink.SetVec3(UniformMaterialAmbientColor, m.AmbientColor)
	d.sink.SetFloat(UniformMaterialAmbientStrength, m.AmbientStrength)
	d.sink.SetVec3(UniformMaterialDiffuseColor, m.DiffuseColor)
	d.sink.SetVec3(UniformMaterialSpecularColor, m.SpecularColor)
	d.sink.SetFloat(UniformMaterialShininess, m.Shininess)
}

// SetTransformations composes and writes the model matrix.
func (d *Dispatcher) SetTransformations(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) mgl32.Mat4 {
	return d.composer.Apply(transform.Request{
		Scale:       scale,
		Rotation:    mgl32.Vec3{rotX, rotY, rotZ},
		Translation: position,
	})
}

func (d *Dispatcher) SetLighting(enabled bool) {
	d.sink.SetBool(UniformUseLighting, enabled)
}

// SetCamera writes the view and projection matrices and the eye position.
func (d *Dispatcher) SetCamera(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	d.sink.SetMat4(UniformView, view)
	d.sink.SetMat4(UniformProjection, projection)
	d.sink.SetVec3(UniformViewPosition, eye)
}
