package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/meshes"
)

// TextureAsset is one image file registered under Tag.
type TextureAsset struct {
	File string
	Tag  string
}

// DeskTextures lists the scene's textures in registration order, which is also
// their texture unit order.
func DeskTextures() []TextureAsset {
	return []TextureAsset{
		{"desktop.jpg", "desk"},
		{"keyboard.jpg", "keyboard"},
		{"rest.jpg", "rest"},
		{"notebook.jpg", "notebook"},
		{"metal.jpg", "metal"},
		{"wood.jpg", "wood"},
		{"pencil.jpg", "pencil"},
		{"metal1.jpg", "metal1"},
		{"eraser.jpg", "eraser"},
	}
}

// DeskMeshes is the load order of the primitives used by the scene.
func DeskMeshes() []meshes.Kind {
	return []meshes.Kind{
		meshes.KindPlane,
		meshes.KindPrism,
		meshes.KindBox,
		meshes.KindCylinder,
		meshes.KindCone,
		meshes.KindTorus,
		meshes.KindBox2,
	}
}

// Object is one draw of the desk scene. Empty Material or Texture, a nil
// Color and a zero UVScale keep whatever the previous object bound.
type Object struct {
	Name     string
	Mesh     meshes.Kind
	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about X, Y, Z
	Position mgl32.Vec3
	Color    *mgl32.Vec4
	Material string
	Texture  string
	UVScale  mgl32.Vec2
}

const (
	spiralX     = -11.4
	spiralY     = 0.05
	spiralStep  = 0.2
	spiralStart = 4.0
)

var pencilGray = mgl32.Vec4{0.2, 0.2, 0.2, 1}

// DeskLayout returns the draw list of the desk in painter order.
func DeskLayout() []Object {
	objs := []Object{
		{
			Name: "desk", Mesh: meshes.KindPlane,
			Scale: mgl32.Vec3{15, 1, 5}, Position: mgl32.Vec3{0, 0, 4},
			Material: "carbon", Texture: "desk", UVScale: mgl32.Vec2{1, 1},
		},
		{
			Name: "keyboard", Mesh: meshes.KindBox,
			Scale: mgl32.Vec3{10, 0.2, 4}, Rotation: mgl32.Vec3{1.8, 0, 0}, Position: mgl32.Vec3{0, 0.05, 4},
			Material: "plastic", Texture: "keyboard",
		},
		{
			Name: "coaster", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{1, 0.05, 1}, Position: mgl32.Vec3{7, 0, 4},
			Material: "fabric", Texture: "rest",
		},
		{
			Name: "wrist rest base", Mesh: meshes.KindBox,
			Scale: mgl32.Vec3{9.5, 0.05, 1.5}, Position: mgl32.Vec3{0, 0.05, 7},
		},
		{
			Name: "wrist rest top", Mesh: meshes.KindBox,
			Scale: mgl32.Vec3{9.4, 0.15, 1.4}, Position: mgl32.Vec3{0, 0.1, 7},
		},
		{
			Name: "notebook", Mesh: meshes.KindBox2,
			Scale: mgl32.Vec3{4.8, 0.1, 6}, Position: mgl32.Vec3{-9, 0.05, 4.5},
			Material: "note", Texture: "notebook",
		},
	}

	objs = append(objs, spirals()...)

	// The pencils keep the tilt of the cones.
	tilt := mgl32.Vec3{-90, 45, 0}
	objs = append(objs,
		Object{
			Name: "pencil tip", Mesh: meshes.KindCone,
			Scale: mgl32.Vec3{0.1, 0.3, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-9.8, 0.2, 2.2},
			Material: "wood", Texture: "wood",
		},
		Object{
			Name: "pencil tip", Mesh: meshes.KindCone,
			Scale: mgl32.Vec3{0.1, 0.3, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-10.3, 0.2, 2.7},
		},
		Object{
			Name: "pencil body", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.1, 3.253, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-7.5, 0.2, 4.5},
			Color: &pencilGray, Material: "pencil", Texture: "pencil",
		},
		Object{
			Name: "pencil body", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.1, 3.253, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-8, 0.2, 5},
		},
		Object{
			Name: "ferrule", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.105, 0.3, 0.105}, Rotation: tilt, Position: mgl32.Vec3{-7.3, 0.2, 4.7},
			Color: &pencilGray, Material: "metal", Texture: "metal1",
		},
		Object{
			Name: "ferrule", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.105, 0.3, 0.105}, Rotation: tilt, Position: mgl32.Vec3{-7.8, 0.2, 5.2},
		},
		Object{
			Name: "eraser", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.1, 0.2, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-7.2, 0.2, 4.8},
			Material: "rubber", Texture: "eraser",
		},
		Object{
			Name: "eraser", Mesh: meshes.KindCylinder,
			Scale: mgl32.Vec3{0.1, 0.2, 0.1}, Rotation: tilt, Position: mgl32.Vec3{-7.7, 0.2, 5.3},
		},
	)
	return objs
}

// spirals are the notebook binding rings: 18 from z=4.0 back to 7.4, then 12
// from 3.8 forward to 1.6.
func spirals() []Object {
	ring := func(z float32) Object {
		return Object{
			Name: "spiral", Mesh: meshes.KindTorus,
			Scale: mgl32.Vec3{0.1, 0.1, 0.05}, Position: mgl32.Vec3{spiralX, spiralY, z},
		}
	}
	var out []Object
	for i := 0; i < 18; i++ {
		out = append(out, ring(spiralStart+float32(i)*spiralStep))
	}
	for i := 1; i <= 12; i++ {
		out = append(out, ring(spiralStart-float32(i)*spiralStep))
	}
	out[0].Material = "metal"
	out[0].Texture = "metal"
	return out
}
