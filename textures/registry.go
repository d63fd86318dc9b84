package textures

import (
	"errors"
	"fmt"
	"log/slog"
)

// MaxSlots is the minimum number of texture units GL guarantees.
const MaxSlots = 16

var (
	ErrCapacity            = errors.New("texture slots exhausted")
	ErrDuplicateTag        = errors.New("texture tag already registered")
	ErrUnsupportedChannels = errors.New("unsupported image channel count")
)

// TextureSlot associates a tag with a GPU texture. Its index in the registry
// is the texture unit it is bound to.
type TextureSlot struct {
	Tag    string
	Handle uint32
}

// Registry is a fixed-capacity, append-only table of textures.
type Registry struct {
	decoder Decoder
	backend Backend
	slots   [MaxSlots]TextureSlot
	next    int
	byTag   map[string]int
}

func NewRegistry(decoder Decoder, backend Backend) *Registry {
	return &Registry{
		decoder: decoder,
		backend: backend,
		byTag:   make(map[string]int),
	}
}

// Load decodes the image at path and registers it under tag in the next free
// slot. On any failure the registry is left unchanged.
func (r *Registry) Load(path, tag string) error {
	if r.next >= MaxSlots {
		slog.Error("could not load texture", "path", path, "tag", tag, "err", ErrCapacity)
		return fmt.Errorf("load %q as %q: %w", path, tag, ErrCapacity)
	}
	if _, ok := r.byTag[tag]; ok {
		slog.Error("could not load texture", "path", path, "tag", tag, "err", ErrDuplicateTag)
		return fmt.Errorf("load %q as %q: %w", path, tag, ErrDuplicateTag)
	}

	img, err := r.decoder.Decode(path)
	if err != nil {
		slog.Warn("could not load image", "path", path, "err", err)
		return err
	}
	slog.Info("loaded image", "path", path, "width", img.Width, "height", img.Height, "channels", img.Channels)

	if img.Channels != 3 && img.Channels != 4 {
		slog.Warn("not implemented to handle image", "path", path, "channels", img.Channels)
		return fmt.Errorf("load %q: %w: %d", path, ErrUnsupportedChannels, img.Channels)
	}

	handle, err := r.backend.Create(img)
	if err != nil {
		slog.Warn("could not create texture", "path", path, "err", err)
		return fmt.Errorf("create texture for %q: %w", path, err)
	}

	r.slots[r.next] = TextureSlot{Tag: tag, Handle: handle}
	r.byTag[tag] = r.next
	r.next++
	return nil
}

// BindAll binds every occupied slot to the texture unit equal to its index.
func (r *Registry) BindAll() {
	for i := 0; i < r.next; i++ {
		r.backend.Bind(i, r.slots[i].Handle)
	}
}

// FindSlot returns the slot (texture unit) registered under tag.
func (r *Registry) FindSlot(tag string) (int, bool) {
	i, ok := r.byTag[tag]
	return i, ok
}

// Handle returns the GPU texture registered under tag.
func (r *Registry) Handle(tag string) (uint32, bool) {
	i, ok := r.byTag[tag]
	if !ok {
		return 0, false
	}
	return r.slots[i].Handle, true
}

func (r *Registry) Len() int {
	return r.next
}

// Slots returns a copy of the occupied slots in unit order.
func (r *Registry) Slots() []TextureSlot {
	out := make([]TextureSlot, r.next)
	copy(out, r.slots[:r.next])
	return out
}

// ReleaseAll deletes every texture created by Load and empties the registry.
func (r *Registry) ReleaseAll() {
	if r.next == 0 {
		return
	}
	handles := make([]uint32, r.next)
	for i := 0; i < r.next; i++ {
		handles[i] = r.slots[i].Handle
	}
	r.backend.Delete(handles)

	r.slots = [MaxSlots]TextureSlot{}
	r.next = 0
	r.byTag = make(map[string]int)
}
