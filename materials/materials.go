// Package materials holds the named shading coefficients used by the scene.
package materials

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrDuplicateTag = errors.New("material tag already defined")
	ErrEmptyTag     = errors.New("material tag is empty")
	ErrFrozen       = errors.New("material table is frozen")
)

// Material describes how a surface responds to light.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Table maps tags to materials. It is filled once while the scene is prepared
// and only read afterwards.
type Table struct {
	materials []Material
	byTag     map[string]int
	frozen    bool
}

func NewTable() *Table {
	return &Table{byTag: make(map[string]int)}
}

// Define appends m. Tags must be non-empty and unique.
func (t *Table) Define(m Material) error {
	if t.frozen {
		return fmt.Errorf("define %q: %w", m.Tag, ErrFrozen)
	}
	if m.Tag == "" {
		return ErrEmptyTag
	}
	if _, ok := t.byTag[m.Tag]; ok {
		return fmt.Errorf("define %q: %w", m.Tag, ErrDuplicateTag)
	}
	t.byTag[m.Tag] = len(t.materials)
	t.materials = append(t.materials, m)
	return nil
}

// Find returns a copy of the material defined under tag.
func (t *Table) Find(tag string) (Material, bool) {
	i, ok := t.byTag[tag]
	if !ok {
		return Material{}, false
	}
	return t.materials[i], true
}

// Freeze rejects further Define calls.
func (t *Table) Freeze() {
	t.frozen = true
}

func (t *Table) Len() int {
	return len(t.materials)
}

// Tags lists the defined tags in definition order.
func (t *Table) Tags() []string {
	tags := make([]string, len(t.materials))
	for i, m := range t.materials {
		tags[i] = m.Tag
	}
	return tags
}
