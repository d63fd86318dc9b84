package textures

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when a file's header does not identify an image.
var ErrNotImage = errors.New("file is not a recognized image type")

// sniffLen is enough header for every image matcher in filetype.
const sniffLen = 262

// Image is decoded pixel data, bottom row first, Channels bytes per pixel.
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// Decoder turns an image file into raw pixels.
type Decoder interface {
	Decode(path string) (*Image, error)
}

// FileDecoder decodes images from the local filesystem. Rows are always
// flipped so that row 0 is the bottom of the image, matching GL texture space.
type FileDecoder struct{}

func (FileDecoder) Decode(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read image %q: %w", path, err)
	}
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("%q: %w", path, ErrNotImage)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind image %q: %w", path, err)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into packed, vertically flipped pixels.
// Gray images keep one channel, opaque images three, everything else four.
func FromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	channels := channelCount(img)

	out := &Image{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}

	if channels == 1 {
		gray := image.NewGray(image.Rect(0, 0, width, height))
		draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
		for y := 0; y < height; y++ {
			srcRow := gray.Pix[(height-1-y)*gray.Stride:]
			copy(out.Pix[y*width:], srcRow[:width])
		}
		return out
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	rowSize := width * channels
	for y := 0; y < height; y++ {
		srcRow := nrgba.Pix[(height-1-y)*nrgba.Stride:]
		dstRow := out.Pix[y*rowSize : (y+1)*rowSize]
		if channels == 4 {
			copy(dstRow, srcRow[:width*4])
			continue
		}
		for x := 0; x < width; x++ {
			copy(dstRow[x*3:x*3+3], srcRow[x*4:x*4+3])
		}
	}
	return out
}

func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
