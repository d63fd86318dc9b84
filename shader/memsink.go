package shader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Write is one recorded uniform assignment.
type Write struct {
	Name  string
	Value any
}

// MemorySink is a Sink that keeps the last value written to every name, plus
// the full write history. It stands in for a GL program when no context is
// available.
type MemorySink struct {
	values map[string]any
	Writes []Write
}

func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]any)}
}

func (m *MemorySink) set(name string, v any) {
	m.values[name] = v
	m.Writes = append(m.Writes, Write{Name: name, Value: v})
}

func (m *MemorySink) SetBool(name string, v bool)          { m.set(name, v) }
func (m *MemorySink) SetInt(name string, v int32)          { m.set(name, v) }
func (m *MemorySink) SetFloat(name string, v float32)      { m.set(name, v) }
func (m *MemorySink) SetVec2(name string, v mgl32.Vec2)    { m.set(name, v) }
func (m *MemorySink) SetVec3(name string, v mgl32.Vec3)    { m.set(name, v) }
func (m *MemorySink) SetVec4(name string, v mgl32.Vec4)    { m.set(name, v) }
func (m *MemorySink) SetMat4(name string, v mgl32.Mat4)    { m.set(name, v) }
func (m *MemorySink) SetSampler2D(name string, unit int32) { m.set(name, unit) }

// Value returns the last value written to name.
func (m *MemorySink) Value(name string) (any, bool) {
	v, ok := m.values[name]
	return v, ok
}

func (m *MemorySink) Bool(name string) (bool, bool) {
	v, ok := m.values[name].(bool)
	return v, ok
}

// Int returns an int or sampler value.
func (m *MemorySink) Int(name string) (int32, bool) {
	v, ok := m.values[name].(int32)
	return v, ok
}

func (m *MemorySink) Float(name string) (float32, bool) {
	v, ok := m.values[name].(float32)
	return v, ok
}

func (m *MemorySink) Vec2(name string) (mgl32.Vec2, bool) {
	v, ok := m.values[name].(mgl32.Vec2)
	return v, ok
}

func (m *MemorySink) Vec3(name string) (mgl32.Vec3, bool) {
	v, ok := m.values[name].(mgl32.Vec3)
	return v, ok
}

func (m *MemorySink) Vec4(name string) (mgl32.Vec4, bool) {
	v, ok := m.values[name].(mgl32.Vec4)
	return v, ok
}

func (m *MemorySink) Mat4(name string) (mgl32.Mat4, bool) {
	v, ok := m.values[name].(mgl32.Mat4)
	return v, ok
}

// Reset forgets all values and history.
func (m *MemorySink) Reset() {
	m.values = make(map[string]any)
	m.Writes = nil
}
