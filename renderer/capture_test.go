package renderer

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"testing"

	"github.com/richinsley/godeskscene/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRows(t *testing.T) {
	// 1x3, one RGBA pixel per row
	pix := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}
	out := flipRows(pix, 1, 3)
	assert.Equal(t, []byte{3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1}, out)
	assert.Equal(t, byte(1), pix[0], "input untouched")
}

func TestEncodePNGIsTopDown(t *testing.T) {
	// bottom row red, top row blue, as GL reads it back
	pix := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	var buf bytes.Buffer
	require.NoError(t, encodePNG(&buf, pix, 2, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Equal(t, uint32(0xffff), b)
	r, _, _, _ = img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.Error(t, encodePNG(&buf, pix[:4], 2, 2))
}

func recordOptions(t *testing.T, args ...string) *options.SceneOptions {
	t.Helper()
	opts, _, err := options.Load("desk", append([]string{"-mode", "record"}, args...))
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	return opts
}

func TestFfmpegArgs(t *testing.T) {
	in, out := ffmpegArgs(recordOptions(t, "-width", "320", "-height", "240", "-fps", "30"))
	assert.Equal(t, "rawvideo", in["f"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "320x240", in["s"])
	assert.Equal(t, 30, in["framerate"])
	assert.Equal(t, "vflip", out["vf"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
	assert.NotContains(t, out, "tag:v")

	_, out = ffmpegArgs(recordOptions(t, "-codec", "hevc", "-output", "desk.MP4"))
	assert.Equal(t, "hvc1", out["tag:v"])
	assert.Contains(t, []any{"libx265", "hevc_videotoolbox"}, out["c:v"])
}

type sinkWriter struct {
	bytes.Buffer
	closed  bool
	failAt  int
	written int
}

func (w *sinkWriter) Write(p []byte) (int, error) {
	if w.failAt > 0 && w.written+1 >= w.failAt {
		return 0, io.ErrClosedPipe
	}
	w.written++
	return w.Buffer.Write(p)
}

func (w *sinkWriter) Close() error {
	w.closed = true
	return nil
}

func feed(n int) <-chan *Frame {
	ch := make(chan *Frame, n)
	for i := 0; i < n; i++ {
		ch <- &Frame{Pixels: []byte{byte(i)}, PTS: int64(i)}
	}
	close(ch)
	return ch
}

func TestEncodeFramesInOrder(t *testing.T) {
	w := &sinkWriter{}
	require.NoError(t, encodeFrames(w, feed(4)))
	assert.Equal(t, []byte{0, 1, 2, 3}, w.Bytes())
	assert.True(t, w.closed)
}

func TestEncodeFramesDrainsAfterFailure(t *testing.T) {
	w := &sinkWriter{failAt: 2}
	err := encodeFrames(w, feed(5))
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
	assert.ErrorContains(t, err, "frame 1")
	assert.Equal(t, []byte{0}, w.Bytes())
	assert.True(t, w.closed)
}
