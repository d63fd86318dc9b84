package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/godeskscene/glfwcontext"
	"github.com/richinsley/godeskscene/graphics"
	"github.com/richinsley/godeskscene/headless"
	"github.com/richinsley/godeskscene/logger"
	"github.com/richinsley/godeskscene/options"
	"github.com/richinsley/godeskscene/renderer"
)

func init() {
	runtime.LockOSThread()
}

// newContext opens a GLFW window, or an EGL surface when headless is set.
// The returned cleanup must run after the renderer is shut down.
func newContext(opts *options.SceneOptions) (graphics.Context, func(), error) {
	if *opts.Headless {
		h, err := headless.NewHeadless(*opts.Width, *opts.Height)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create headless context: %w", err)
		}
		return h, h.Shutdown, nil
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	visible := *opts.Mode == options.ModeWindow
	ctx, err := glfwcontext.New(*opts.Width, *opts.Height, visible)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, fmt.Errorf("failed to create window: %w", err)
	}
	return ctx, func() {
		ctx.Shutdown()
		glfwcontext.TerminateGraphics()
	}, nil
}

func run(opts *options.SceneOptions) error {
	if *opts.Mode == options.ModeDryRun {
		cam := renderer.NewCamera(opts.Camera, *opts.Orbit)
		return renderer.DryRun(os.Stdout, *opts.TextureDir, cam, *opts.Width, *opts.Height)
	}
	if *opts.Headless && *opts.Mode == options.ModeWindow {
		return fmt.Errorf("%w: headless rendering needs screenshot or record mode", options.ErrInvalid)
	}

	ctx, cleanup, err := newContext(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	switch *opts.Mode {
	case options.ModeScreenshot:
		return r.Screenshot(*opts.OutputFile)
	case options.ModeRecord:
		return r.Record()
	default:
		slog.Info("starting interactive render loop")
		r.Run()
		return nil
	}
}

func main() {
	opts, fs, err := options.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *opts.Help {
		fmt.Println("Desk scene viewer/recorder")
		fs.PrintDefaults()
		return
	}

	if err := logger.Init(*opts.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := opts.Validate(); err != nil {
		slog.Error("invalid options", "err", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		slog.Error("desk scene failed", "err", err)
		os.Exit(1)
	}
}
