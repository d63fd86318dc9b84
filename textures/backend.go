package textures

// Backend owns GPU texture objects on behalf of a Registry.
type Backend interface {
	// Create uploads img as a new 2D texture and returns its handle.
	Create(img *Image) (uint32, error)
	// Bind binds handle to texture unit unit.
	Bind(unit int, handle uint32)
	// Delete releases the given textures.
	Delete(handles []uint32)
}

// MemoryBackend hands out sequential handles without a GPU. It tracks what a
// GL backend would have done so callers can inspect it.
type MemoryBackend struct {
	next    uint32
	Live    map[uint32]*Image
	Bound   map[int]uint32
	Deleted []uint32
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		Live:  make(map[uint32]*Image),
		Bound: make(map[int]uint32),
	}
}

func (b *MemoryBackend) Create(img *Image) (uint32, error) {
	b.next++
	b.Live[b.next] = img
	return b.next, nil
}

func (b *MemoryBackend) Bind(unit int, handle uint32) {
	b.Bound[unit] = handle
}

func (b *MemoryBackend) Delete(handles []uint32) {
	for _, h := range handles {
		delete(b.Live, h)
		for unit, bound := range b.Bound {
			if bound == h {
				delete(b.Bound, unit)
			}
		}
	}
	b.Deleted = append(b.Deleted, handles...)
}
