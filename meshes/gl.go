package meshes

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// GLProvider uploads each primitive once and draws it with glDrawElements.
// Attribute locations are 0 position, 1 normal, 2 texcoord.
type GLProvider struct {
	meshes map[Kind]*glMesh
}

func NewGLProvider() *GLProvider {
	return &GLProvider{meshes: make(map[Kind]*glMesh)}
}

func (p *GLProvider) Load(k Kind) error {
	if _, ok := p.meshes[k]; ok {
		return nil
	}
	geo, err := Generate(k)
	if err != nil {
		return err
	}

	m := &glMesh{count: int32(len(geo.Indices))}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, gl.Ptr(geo.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	stride := int32(FloatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	p.meshes[k] = m
	slog.Debug("mesh uploaded", "kind", k, "vertices", geo.VertexCount(), "indices", len(geo.Indices))
	return nil
}

func (p *GLProvider) Draw(k Kind) {
	m, ok := p.meshes[k]
	if !ok {
		slog.Debug("draw of unloaded mesh", "kind", k)
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (p *GLProvider) Release() {
	for k, m := range p.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(p.meshes, k)
	}
}
