package renderer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/godeskscene/binding"
	"github.com/richinsley/godeskscene/lighting"
	"github.com/richinsley/godeskscene/materials"
	"github.com/richinsley/godeskscene/meshes"
	"github.com/richinsley/godeskscene/shader"
	"github.com/richinsley/godeskscene/textures"
)

// SceneManager prepares the desk's resources and issues its draws.
type SceneManager struct {
	sink       shader.Sink
	textures   *textures.Registry
	materials  *materials.Table
	meshes     meshes.Provider
	dispatch   *binding.Dispatcher
	rig        lighting.Rig
	textureDir string
	layout     []Object
	prepared   bool
}

// NewSceneManager wires a scene to its uniform sink, texture registry and mesh
// provider. Textures are looked up under textureDir.
func NewSceneManager(sink shader.Sink, reg *textures.Registry, provider meshes.Provider, textureDir string) *SceneManager {
	mats := materials.NewTable()
	return &SceneManager{
		sink:       sink,
		textures:   reg,
		materials:  mats,
		meshes:     provider,
		dispatch:   binding.NewDispatcher(sink, reg, mats),
		rig:        lighting.DeskRig(),
		textureDir: textureDir,
		layout:     DeskLayout(),
	}
}

// Dispatcher exposes the uniform dispatcher for camera updates.
func (s *SceneManager) Dispatcher() *binding.Dispatcher {
	return s.dispatch
}

// Layout returns the draw list.
func (s *SceneManager) Layout() []Object {
	return s.layout
}

// Prepare defines materials, loads and binds textures, sets up the lights and
// uploads every mesh the layout uses. A texture that fails to load is logged
// and skipped; draws using its tag get no texture.
func (s *SceneManager) Prepare() error {
	for _, m := range materials.DeskMaterials() {
		if err := s.materials.Define(m); err != nil {
			return fmt.Errorf("failed to define material %q: %w", m.Tag, err)
		}
	}
	s.materials.Freeze()

	var failed int
	for _, asset := range DeskTextures() {
		path := filepath.Join(s.textureDir, asset.File)
		if err := s.textures.Load(path, asset.Tag); err != nil {
			failed++
		}
	}
	if failed > 0 {
		slog.Warn("some textures failed to load", "failed", failed, "loaded", s.textures.Len(), "dir", s.textureDir)
	}
	s.textures.BindAll()

	if err := s.rig.Apply(s.sink); err != nil {
		return fmt.Errorf("failed to set up lights: %w", err)
	}

	for _, k := range DeskMeshes() {
		if err := s.meshes.Load(k); err != nil {
			return fmt.Errorf("failed to load %s mesh: %w", k, err)
		}
	}
	s.prepared = true
	slog.Info("scene prepared", "textures", s.textures.Len(), "materials", s.materials.Len(), "objects", len(s.layout))
	return nil
}

// Render draws the layout once. Uniform state carries over between objects.
func (s *SceneManager) Render() {
	if !s.prepared {
		slog.Warn("render before prepare")
		return
	}
	for _, obj := range s.layout {
		s.dispatch.SetTransformations(obj.Scale, obj.Rotation.X(), obj.Rotation.Y(), obj.Rotation.Z(), obj.Position)
		if obj.Color != nil {
			c := *obj.Color
			s.dispatch.SetColor(c[0], c[1], c[2], c[3])
		}
		if obj.Material != "" {
			s.dispatch.SetMaterial(obj.Material)
		}
		if obj.Texture != "" {
			s.dispatch.SetTexture(obj.Texture)
		}
		if obj.UVScale != (mgl32.Vec2{}) {
			s.dispatch.SetUVScale(obj.UVScale.X(), obj.UVScale.Y())
		}
		s.meshes.Draw(obj.Mesh)
	}
}

// Destroy releases GPU textures and meshes. Calling it twice is harmless.
func (s *SceneManager) Destroy() {
	s.textures.ReleaseAll()
	s.meshes.Release()
	s.prepared = false
}
