package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/richinsley/godeskscene/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame is one rendered frame's RGBA pixels, bottom row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const frameQueue = 3

// flipRows returns a copy of pix with its rows in reverse order.
func flipRows(pix []byte, width, height int) []byte {
	stride := width * 4
	out := make([]byte, len(pix))
	for y := 0; y < height; y++ {
		copy(out[y*stride:(y+1)*stride], pix[(height-1-y)*stride:(height-y)*stride])
	}
	return out
}

// encodePNG writes bottom-up RGBA pixels as a top-down PNG.
func encodePNG(w io.Writer, pix []byte, width, height int) error {
	if len(pix) != width*height*4 {
		return fmt.Errorf("pixel buffer is %d bytes, want %d", len(pix), width*height*4)
	}
	img := &image.NRGBA{
		Pix:    flipRows(pix, width, height),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return png.Encode(w, img)
}

// Screenshot renders one frame and saves it as a PNG at path.
func (r *Renderer) Screenshot(path string) error {
	r.RenderFrame(0)
	width, height := r.offscreenRenderer.Size()
	pixels := r.offscreenRenderer.ReadPixels()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create screenshot: %w", err)
	}
	if err := encodePNG(f, pixels, width, height); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("screenshot saved", "path", path, "width", width, "height", height)
	return nil
}

// ffmpegArgs builds the raw RGBA input and the encoder output arguments.
func ffmpegArgs(opts *options.SceneOptions) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", *opts.Width, *opts.Height),
		"framerate": *opts.FPS,
	}

	outputArgs = ffmpeg.KwArgs{
		// GL rows arrive bottom first
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}
	hevc := *opts.Codec == "hevc"
	switch runtime.GOOS {
	case "darwin":
		if hevc {
			outputArgs["c:v"] = "hevc_videotoolbox"
		} else {
			outputArgs["c:v"] = "h264_videotoolbox"
		}
		outputArgs["b:v"] = "25M"
	default:
		if hevc {
			outputArgs["c:v"] = "libx265"
		} else {
			outputArgs["c:v"] = "libx264"
		}
		outputArgs["crf"] = 18
	}

	if hevc && strings.EqualFold(filepath.Ext(*opts.OutputFile), ".mp4") {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

// encodeFrames writes each frame's pixels to w in order and closes w when the
// channel is drained or a write fails.
func encodeFrames(w io.WriteCloser, frameChan <-chan *Frame) error {
	defer w.Close()
	for frame := range frameChan {
		if _, err := w.Write(frame.Pixels); err != nil {
			// keep draining so the producer never blocks
			for range frameChan {
			}
			return fmt.Errorf("failed to write frame %d: %w", frame.PTS, err)
		}
	}
	return nil
}

// runEncoder starts ffmpeg and feeds it frames until frameChan is closed.
func (r *Renderer) runEncoder(frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := ffmpegArgs(r.opts)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*r.opts.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *r.opts.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(*r.opts.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// unblock a writer if ffmpeg exits early
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	writeErr := encodeFrames(pipeWriter, frameChan)
	runErr := <-errc
	if runErr != nil {
		doneChan <- fmt.Errorf("ffmpeg failed: %w", runErr)
		return
	}
	doneChan <- writeErr
}

// Record renders duration*fps frames of the scene at fixed time steps and
// encodes them to the output file.
func (r *Renderer) Record() error {
	slog.Info("recording", "output", *r.opts.OutputFile, "frames", r.opts.TotalFrames(), "fps", *r.opts.FPS)
	frameChan := make(chan *Frame, frameQueue)
	encoderDoneChan := make(chan error, 1)

	go r.runEncoder(frameChan, encoderDoneChan)

	totalFrames := r.opts.TotalFrames()
	timeStep := 1.0 / float64(*r.opts.FPS)
	for i := 0; i < totalFrames; i++ {
		r.RenderFrame(float64(i) * timeStep)
		frameChan <- &Frame{Pixels: r.offscreenRenderer.ReadPixels(), PTS: int64(i)}
		r.context.EndFrame()
	}
	close(frameChan)

	if err := <-encoderDoneChan; err != nil {
		return err
	}
	slog.Info("recording finished", "output", *r.opts.OutputFile)
	return nil
}
