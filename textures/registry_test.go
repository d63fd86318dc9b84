package textures

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnreadable = errors.New("unreadable")

// fakeDecoder serves images by path; unknown paths fail to decode.
type fakeDecoder map[string]*Image

func (d fakeDecoder) Decode(path string) (*Image, error) {
	img, ok := d[path]
	if !ok {
		return nil, fmt.Errorf("decode %q: %w", path, errUnreadable)
	}
	return img, nil
}

func rgb() *Image  { return &Image{Pix: make([]byte, 3), Width: 1, Height: 1, Channels: 3} }
func rgba() *Image { return &Image{Pix: make([]byte, 4), Width: 1, Height: 1, Channels: 4} }

func newFixture(n int) (*Registry, *MemoryBackend) {
	dec := fakeDecoder{}
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			dec[fmt.Sprintf("tex%d.jpg", i)] = rgb()
		} else {
			dec[fmt.Sprintf("tex%d.png", i)] = rgba()
		}
	}
	dec["gray.png"] = &Image{Pix: make([]byte, 1), Width: 1, Height: 1, Channels: 1}
	backend := NewMemoryBackend()
	return NewRegistry(dec, backend), backend
}

func path(i int) string {
	if i%2 == 0 {
		return fmt.Sprintf("tex%d.jpg", i)
	}
	return fmt.Sprintf("tex%d.png", i)
}

func TestLoadAssignsSlotsInInsertionOrder(t *testing.T) {
	reg, backend := newFixture(3)

	require.NoError(t, reg.Load(path(0), "desk"))
	require.NoError(t, reg.Load(path(1), "keyboard"))
	require.NoError(t, reg.Load(path(2), "rest"))

	for want, tag := range []string{"desk", "keyboard", "rest"} {
		slot, ok := reg.FindSlot(tag)
		require.True(t, ok, tag)
		assert.Equal(t, want, slot, tag)
	}
	assert.Equal(t, 3, reg.Len())
	assert.Len(t, backend.Live, 3)

	h, ok := reg.Handle("keyboard")
	require.True(t, ok)
	assert.Equal(t, reg.Slots()[1].Handle, h)
}

func TestFailedLoadsDoNotConsumeSlots(t *testing.T) {
	reg, backend := newFixture(2)

	require.NoError(t, reg.Load(path(0), "desk"))

	err := reg.Load("missing.jpg", "wood")
	assert.ErrorIs(t, err, errUnreadable)

	err = reg.Load("gray.png", "gray")
	assert.ErrorIs(t, err, ErrUnsupportedChannels)

	require.NoError(t, reg.Load(path(1), "keyboard"))

	slot, ok := reg.FindSlot("keyboard")
	require.True(t, ok)
	assert.Equal(t, 1, slot)
	_, ok = reg.FindSlot("wood")
	assert.False(t, ok)
	_, ok = reg.FindSlot("gray")
	assert.False(t, ok)
	assert.Len(t, backend.Live, 2)
}

func TestSeventeenthLoadFailsWithCapacityError(t *testing.T) {
	reg, backend := newFixture(MaxSlots + 1)

	for i := 0; i < MaxSlots; i++ {
		require.NoError(t, reg.Load(path(i), fmt.Sprintf("t%d", i)))
	}
	before := reg.Slots()

	err := reg.Load(path(MaxSlots), "overflow")
	assert.ErrorIs(t, err, ErrCapacity)

	assert.Equal(t, before, reg.Slots())
	assert.Equal(t, MaxSlots, reg.Len())
	_, ok := reg.FindSlot("overflow")
	assert.False(t, ok)
	assert.Len(t, backend.Live, MaxSlots)

	slot, ok := reg.FindSlot("t0")
	require.True(t, ok)
	assert.Equal(t, 0, slot)
}

func TestDuplicateTagRejected(t *testing.T) {
	reg, _ := newFixture(2)

	require.NoError(t, reg.Load(path(0), "metal"))
	err := reg.Load(path(1), "metal")
	assert.ErrorIs(t, err, ErrDuplicateTag)
	assert.Equal(t, 1, reg.Len())
}

func TestFindSlotUnknownTag(t *testing.T) {
	reg, _ := newFixture(0)
	slot, ok := reg.FindSlot("nothing")
	assert.False(t, ok)
	assert.Equal(t, 0, slot)

	_, ok = reg.Handle("nothing")
	assert.False(t, ok)
}

func TestBindAllBindsSlotIndexAsUnit(t *testing.T) {
	reg, backend := newFixture(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, reg.Load(path(i), fmt.Sprintf("t%d", i)))
	}

	reg.BindAll()

	for i, s := range reg.Slots() {
		assert.Equal(t, s.Handle, backend.Bound[i])
	}
	assert.Len(t, backend.Bound, 3)
}

func TestReleaseAllDeletesEachTextureOnce(t *testing.T) {
	reg, backend := newFixture(4)
	for i := 0; i < 4; i++ {
		require.NoError(t, reg.Load(path(i), fmt.Sprintf("t%d", i)))
	}
	slots := reg.Slots()

	reg.ReleaseAll()
	reg.ReleaseAll()

	require.Len(t, backend.Deleted, 4)
	for i, s := range slots {
		assert.Equal(t, s.Handle, backend.Deleted[i])
	}
	assert.Empty(t, backend.Live)
	assert.Equal(t, 0, reg.Len())
	_, ok := reg.FindSlot("t0")
	assert.False(t, ok)
}

func TestProperty_SlotEqualsSuccessfulInsertionOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Each element says whether that load should decode successfully.
	properties.Property("slot index equals order among successful loads", prop.ForAll(
		func(outcomes []bool) bool {
			dec := fakeDecoder{}
			reg := NewRegistry(dec, NewMemoryBackend())
			successes := 0
			for i, ok := range outcomes {
				p := fmt.Sprintf("img%d.png", i)
				if ok {
					dec[p] = rgba()
				}
				err := reg.Load(p, fmt.Sprintf("tag%d", i))
				if ok && successes < MaxSlots {
					if err != nil {
						return false
					}
					slot, found := reg.FindSlot(fmt.Sprintf("tag%d", i))
					if !found || slot != successes || slot >= MaxSlots {
						return false
					}
					successes++
				} else if err == nil {
					return false
				}
			}
			return reg.Len() == successes
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
