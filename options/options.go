// Package options holds the command line and config file settings of the
// desk scene viewer.
package options

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Render modes.
const (
	ModeWindow     = "window"
	ModeScreenshot = "screenshot"
	ModeRecord     = "record"
	ModeDryRun     = "dry-run"
)

var ErrInvalid = errors.New("invalid option")

// CameraOptions positions the camera. It has no flags and is only read from
// the config file.
type CameraOptions struct {
	Eye        [3]float32 `toml:"eye"`
	Target     [3]float32 `toml:"target"`
	FOV        float32    `toml:"fov"`
	OrbitSpeed float32    `toml:"orbit_speed"` // degrees per second
}

// DefaultCamera looks down at the desk from the front.
func DefaultCamera() CameraOptions {
	return CameraOptions{
		Eye:        [3]float32{0, 12, 18},
		Target:     [3]float32{-1, 0, 4},
		FOV:        45,
		OrbitSpeed: 20,
	}
}

type SceneOptions struct {
	ConfigFile *string
	Help       *bool
	Mode       *string
	Width      *int
	Height     *int
	TextureDir *string
	OutputFile *string
	Duration   *float64
	FPS        *int
	FFMPEGPath *string
	Codec      *string
	Orbit      *bool
	Headless   *bool
	LogLevel   *string
	Camera     CameraOptions
}

// fileConfig mirrors the config file. Absent keys stay nil.
type fileConfig struct {
	Mode       *string        `toml:"mode"`
	Width      *int           `toml:"width"`
	Height     *int           `toml:"height"`
	TextureDir *string        `toml:"textures"`
	OutputFile *string        `toml:"output"`
	Duration   *float64       `toml:"duration"`
	FPS        *int           `toml:"fps"`
	FFMPEGPath *string        `toml:"ffmpeg"`
	Codec      *string        `toml:"codec"`
	Orbit      *bool          `toml:"orbit"`
	Headless   *bool          `toml:"headless"`
	LogLevel   *string        `toml:"log_level"`
	Camera     *CameraOptions `toml:"camera"`
}

// Register binds every option to fs.
func Register(fs *flag.FlagSet) *SceneOptions {
	return &SceneOptions{
		ConfigFile: fs.String("config", "", "Path to a TOML config file"),
		Help:       fs.Bool("help", false, "Show help message"),
		Mode:       fs.String("mode", ModeWindow, "Render mode: window, screenshot, record or dry-run"),
		Width:      fs.Int("width", 1280, "Width of the output"),
		Height:     fs.Int("height", 720, "Height of the output"),
		TextureDir: fs.String("textures", "textures", "Directory holding the scene textures"),
		OutputFile: fs.String("output", "", "Output file for screenshot or record mode"),
		Duration:   fs.Float64("duration", 10.0, "Duration to record in seconds"),
		FPS:        fs.Int("fps", 60, "Frames per second for recording"),
		FFMPEGPath: fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Codec:      fs.String("codec", "h264", "Video codec for record mode: h264 or hevc"),
		Orbit:      fs.Bool("orbit", false, "Orbit the camera around the desk"),
		Headless:   fs.Bool("headless", false, "Use a headless EGL context (linux only)"),
		LogLevel:   fs.String("log-level", "info", "Log level: debug, info, warn or error"),
		Camera:     DefaultCamera(),
	}
}

// Load parses args into a fresh SceneOptions and overlays the config file, if
// one is named. Flags given explicitly on the command line win over the file.
func Load(name string, args []string) (*SceneOptions, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if *opts.ConfigFile != "" {
		data, err := os.ReadFile(*opts.ConfigFile)
		if err != nil {
			return nil, fs, fmt.Errorf("failed to read config: %w", err)
		}
		if err := opts.Overlay(data, explicitFlags(fs)); err != nil {
			return nil, fs, err
		}
	}
	return opts, fs, nil
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// Overlay applies TOML data on top of the current values, skipping any option
// whose flag name is in explicit.
func (o *SceneOptions) Overlay(data []byte, explicit map[string]bool) error {
	// camera keys not present in the file keep their current value
	cam := o.Camera
	fc := fileConfig{Camera: &cam}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	overlay(explicit, "mode", o.Mode, fc.Mode)
	overlay(explicit, "width", o.Width, fc.Width)
	overlay(explicit, "height", o.Height, fc.Height)
	overlay(explicit, "textures", o.TextureDir, fc.TextureDir)
	overlay(explicit, "output", o.OutputFile, fc.OutputFile)
	overlay(explicit, "duration", o.Duration, fc.Duration)
	overlay(explicit, "fps", o.FPS, fc.FPS)
	overlay(explicit, "ffmpeg", o.FFMPEGPath, fc.FFMPEGPath)
	overlay(explicit, "codec", o.Codec, fc.Codec)
	overlay(explicit, "orbit", o.Orbit, fc.Orbit)
	overlay(explicit, "headless", o.Headless, fc.Headless)
	overlay(explicit, "log-level", o.LogLevel, fc.LogLevel)
	o.Camera = cam
	return nil
}

func overlay[T any](explicit map[string]bool, name string, dst, src *T) {
	if src == nil || dst == nil || explicit[name] {
		return
	}
	*dst = *src
}

// Validate checks the combination of options for the selected mode and fills
// in a default output file.
func (o *SceneOptions) Validate() error {
	switch *o.Mode {
	case ModeWindow, ModeDryRun:
	case ModeScreenshot:
		if *o.OutputFile == "" {
			*o.OutputFile = "desk.png"
		}
	case ModeRecord:
		if *o.OutputFile == "" {
			*o.OutputFile = "desk.mp4"
		}
		if *o.Duration <= 0 {
			return fmt.Errorf("%w: duration must be positive, got %v", ErrInvalid, *o.Duration)
		}
		if *o.FPS <= 0 {
			return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, *o.FPS)
		}
		if *o.Codec != "h264" && *o.Codec != "hevc" {
			return fmt.Errorf("%w: unknown codec %q", ErrInvalid, *o.Codec)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, *o.Mode)
	}
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalid, *o.Width, *o.Height)
	}
	if o.Camera.FOV <= 0 || o.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera fov must be in (0, 180), got %v", ErrInvalid, o.Camera.FOV)
	}
	return nil
}

// TotalFrames is the number of frames record mode renders.
func (o *SceneOptions) TotalFrames() int {
	return int(*o.Duration * float64(*o.FPS))
}
