// Package renderer draws the desk scene into an offscreen framebuffer and
// presents, saves or encodes the result.
package renderer

import (
	"fmt"
	"log/slog"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/godeskscene/graphics"
	"github.com/richinsley/godeskscene/meshes"
	"github.com/richinsley/godeskscene/options"
	"github.com/richinsley/godeskscene/shader"
	"github.com/richinsley/godeskscene/textures"
)

var glInitOnce sync.Once

type Renderer struct {
	context           graphics.Context
	opts              *options.SceneOptions
	program           *shader.Program
	blitProgram       *shader.Program
	quadVAO           uint32
	quadVBO           uint32
	offscreenRenderer *OffscreenRenderer
	registry          *textures.Registry
	scene             *SceneManager
	camera            Camera
	width             int
	height            int
	// fixed output size; the window may not be resized
	recordMode bool
}

var quadVertices = []float32{
	-1.0, 1.0, -1.0, -1.0, 1.0, -1.0,
	-1.0, 1.0, 1.0, -1.0, 1.0, 1.0,
}

// NewRenderer compiles the shaders, creates the offscreen target and prepares
// the scene on ctx. The context stays owned by the caller.
func NewRenderer(ctx graphics.Context, opts *options.SceneOptions) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		opts:       opts,
		camera:     NewCamera(opts.Camera, *opts.Orbit),
		width:      *opts.Width,
		height:     *opts.Height,
		recordMode: *opts.Mode != options.ModeWindow,
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	slog.Info("opengl initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)), "gles", ctx.IsGLES())

	var err error
	isGLES := ctx.IsGLES()
	r.program, err = shader.NewProgram(shader.SceneVertexShader(isGLES), shader.SceneFragmentShader(isGLES))
	if err != nil {
		return nil, fmt.Errorf("failed to create scene program: %w", err)
	}
	r.blitProgram, err = shader.NewProgram(shader.BlitVertexShader(isGLES), shader.BlitFragmentShader(isGLES))
	if err != nil {
		r.program.Delete()
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}
	r.blitProgram.Use()
	r.blitProgram.SetSampler2D("u_texture", 0)

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	width, height := r.renderSize()
	r.offscreenRenderer, err = NewOffscreenRenderer(width, height)
	if err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to create offscreen renderer: %w", err)
	}

	r.registry = textures.NewRegistry(textures.FileDecoder{}, textures.GLBackend{})
	r.scene = NewSceneManager(r.program, r.registry, meshes.NewGLProvider(), *opts.TextureDir)

	r.program.Use()
	if err := r.scene.Prepare(); err != nil {
		r.Shutdown()
		return nil, fmt.Errorf("failed to prepare scene: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	return r, nil
}

// renderSize is the fixed output size in capture modes and the framebuffer
// size in a window.
func (r *Renderer) renderSize() (int, int) {
	if r.recordMode {
		return r.width, r.height
	}
	return r.context.GetFramebufferSize()
}

// RenderFrame draws the scene at time t (seconds) into the offscreen target.
func (r *Renderer) RenderFrame(t float64) {
	width, height := r.renderSize()
	r.offscreenRenderer.Resize(width, height)

	r.offscreenRenderer.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	// the blit pass leaves the offscreen texture on unit 0
	r.registry.BindAll()
	r.camera.Apply(r.scene.Dispatcher(), t, width, height)
	r.scene.Render()

	gl.BindVertexArray(0)
	r.offscreenRenderer.Unbind()
}

// blit copies the offscreen target to the default framebuffer.
func (r *Renderer) blit() {
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.Disable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.blitProgram.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.offscreenRenderer.textureID)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Run renders to the window until it is closed.
func (r *Renderer) Run() {
	startTime := r.context.Time()
	var frames int
	for !r.context.ShouldClose() {
		r.RenderFrame(r.context.Time() - startTime)
		r.blit()
		r.context.EndFrame()
		frames++
	}
	slog.Info("window closed", "frames", frames, "seconds", r.context.Time()-startTime)
}

// Shutdown releases every GL resource the renderer created.
func (r *Renderer) Shutdown() {
	if r.scene != nil {
		r.scene.Destroy()
	}
	if r.program != nil {
		r.program.Delete()
	}
	if r.blitProgram != nil {
		r.blitProgram.Delete()
	}
	if r.offscreenRenderer != nil {
		r.offscreenRenderer.Destroy()
	}
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}
