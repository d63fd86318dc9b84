// Package meshes tessellates the primitive shapes of the scene and owns their
// GPU buffers.
package meshes

import (
	"errors"
	"fmt"
	"log/slog"
)

// Kind names one primitive shape.
type Kind int

const (
	KindPlane Kind = iota
	KindBox
	KindBox2
	KindCylinder
	KindCone
	KindPrism
	KindTorus
)

var kindNames = [...]string{"plane", "box", "box2", "cylinder", "cone", "prism", "torus"}

var ErrUnknownKind = errors.New("unknown mesh kind")

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every primitive in declaration order.
func Kinds() []Kind {
	return []Kind{KindPlane, KindBox, KindBox2, KindCylinder, KindCone, KindPrism, KindTorus}
}

// Generate tessellates k on the CPU.
func Generate(k Kind) (*Geometry, error) {
	switch k {
	case KindPlane:
		return Plane(), nil
	case KindBox:
		return Box(), nil
	case KindBox2:
		return Box2(), nil
	case KindCylinder:
		return Cylinder(), nil
	case KindCone:
		return Cone(), nil
	case KindPrism:
		return Prism(), nil
	case KindTorus:
		return Torus(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
}

// Provider loads and draws primitives. Load is idempotent per kind.
type Provider interface {
	Load(k Kind) error
	Draw(k Kind)
	Release()
}

// Recorder is a Provider that only remembers what it was asked to do.
type Recorder struct {
	Loaded   map[Kind]int
	Draws    []Kind
	Released bool
}

func NewRecorder() *Recorder {
	return &Recorder{Loaded: map[Kind]int{}}
}

func (r *Recorder) Load(k Kind) error {
	if _, err := Generate(k); err != nil {
		return err
	}
	r.Loaded[k]++
	return nil
}

func (r *Recorder) Draw(k Kind) {
	if r.Loaded[k] == 0 {
		slog.Debug("draw of unloaded mesh", "kind", k)
		return
	}
	r.Draws = append(r.Draws, k)
}

func (r *Recorder) Release() {
	r.Loaded = map[Kind]int{}
	r.Released = true
}
