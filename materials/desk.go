package materials

import "github.com/go-gl/mathgl/mgl32"

// DeskMaterials returns the materials of the desk scene.
func DeskMaterials() []Material {
	return []Material{
		{
			Tag:             "carbon",
			AmbientColor:    mgl32.Vec3{0.01, 0.01, 0.01},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.2},
			Shininess:       5,
		},
		{
			Tag:             "plastic",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       25,
		},
		{
			Tag:             "fabric",
			AmbientColor:    mgl32.Vec3{0.01, 0.01, 0.01},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.05, 0.05, 0.05},
			SpecularColor:   mgl32.Vec3{0.01, 0.01, 0.01},
			Shininess:       5,
		},
		{
			Tag:             "note",
			AmbientColor:    mgl32.Vec3{0.01, 0.01, 0.2},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
			Shininess:       100,
		},
		{
			Tag:             "wood",
			AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.05},
			AmbientStrength: 0.1,
			DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.15},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.05},
			Shininess:       50,
		},
		{
			Tag:             "pencil",
			AmbientColor:    mgl32.Vec3{0.3, 0.3, 0.0},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.7, 0.7, 0.0},
			SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.0},
			Shininess:       10,
		},
		{
			Tag:             "metal",
			AmbientColor:    mgl32.Vec3{0.5, 0.5, 0.5},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
			SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
			Shininess:       100,
		},
		{
			Tag:             "rubber",
			AmbientColor:    mgl32.Vec3{0.5, 0.37, 0.4},
			AmbientStrength: 0.9,
			DiffuseColor:    mgl32.Vec3{0.5, 0.37, 0.4},
			SpecularColor:   mgl32.Vec3{0.01, 0.007, 0.008},
			Shininess:       10,
		},
	}
}
