package renderer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/richinsley/godeskscene/binding"
	"github.com/richinsley/godeskscene/meshes"
	"github.com/richinsley/godeskscene/shader"
	"github.com/richinsley/godeskscene/textures"
)

// DrawRecord is the uniform state in effect when one draw was issued.
type DrawRecord struct {
	Mesh       meshes.Kind
	UseTexture bool
	Unit       int32
	Shininess  float32
	Position   [3]float32
}

// tracer records the sink state at every draw it forwards.
type tracer struct {
	meshes.Provider
	sink  *shader.MemorySink
	draws []DrawRecord
}

func (t *tracer) Draw(k meshes.Kind) {
	rec := DrawRecord{Mesh: k, Unit: binding.NoTextureUnit}
	rec.UseTexture, _ = t.sink.Bool(binding.UniformUseTexture)
	if unit, ok := t.sink.Int(binding.UniformTexture); ok {
		rec.Unit = unit
	}
	rec.Shininess, _ = t.sink.Float(binding.UniformMaterialShininess)
	if model, ok := t.sink.Mat4(binding.UniformModel); ok {
		rec.Position = model.Col(3).Vec3()
	}
	t.draws = append(t.draws, rec)
	t.Provider.Draw(k)
}

// Trace is the outcome of one frame rendered without a GL context.
type Trace struct {
	Slots  []textures.TextureSlot
	Layout []Object
	Draws  []DrawRecord
	Sink   *shader.MemorySink
}

// TraceFrame prepares and renders the scene once against an in-memory sink.
// Textures are decoded from textureDir but never uploaded.
func TraceFrame(textureDir string, cam Camera, width, height int) (*Trace, error) {
	sink := shader.NewMemorySink()
	reg := textures.NewRegistry(textures.FileDecoder{}, textures.NewMemoryBackend())
	tr := &tracer{Provider: meshes.NewRecorder(), sink: sink}

	scene := NewSceneManager(sink, reg, tr, textureDir)
	if err := scene.Prepare(); err != nil {
		return nil, err
	}
	cam.Apply(scene.Dispatcher(), 0, width, height)
	scene.Render()
	out := &Trace{Slots: reg.Slots(), Layout: scene.Layout(), Draws: tr.draws, Sink: sink}
	scene.Destroy()
	return out, nil
}

// DryRun traces the scene and prints its texture slots and draw list to w.
func DryRun(w io.Writer, textureDir string, cam Camera, width, height int) error {
	trace, err := TraceFrame(textureDir, cam, width, height)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "UNIT\tTEXTURE\n")
	for unit, slot := range trace.Slots {
		fmt.Fprintf(tw, "%d\t%s\n", unit, slot.Tag)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "#\tOBJECT\tMESH\tUNIT\tSHININESS\tPOSITION\n")
	for i, d := range trace.Draws {
		unit := "color"
		if d.UseTexture {
			unit = fmt.Sprint(d.Unit)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%g\t(%.2f, %.2f, %.2f)\n",
			i, trace.Layout[i].Name, d.Mesh, unit, d.Shininess, d.Position[0], d.Position[1], d.Position[2])
	}
	return tw.Flush()
}
