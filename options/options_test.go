package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	opts, _, err := Load("desk", nil)
	require.NoError(t, err)
	assert.Equal(t, ModeWindow, *opts.Mode)
	assert.Equal(t, 1280, *opts.Width)
	assert.Equal(t, 720, *opts.Height)
	assert.Equal(t, "textures", *opts.TextureDir)
	assert.Equal(t, DefaultCamera(), opts.Camera)
	require.NoError(t, opts.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "desk.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConfigOverlayPrecedence(t *testing.T) {
	path := writeConfig(t, `
mode = "record"
width = 640
height = 480
fps = 24
textures = "/srv/desk"

[camera]
eye = [1.0, 2.0, 3.0]
target = [0.0, 0.0, 0.0]
fov = 60.0
orbit_speed = 10.0
`)

	opts, _, err := Load("desk", []string{"-config", path, "-width", "800"})
	require.NoError(t, err)

	// flag beats file
	assert.Equal(t, 800, *opts.Width)
	// file beats default
	assert.Equal(t, ModeRecord, *opts.Mode)
	assert.Equal(t, 480, *opts.Height)
	assert.Equal(t, 24, *opts.FPS)
	assert.Equal(t, "/srv/desk", *opts.TextureDir)
	// untouched keys keep defaults
	assert.Equal(t, 10.0, *opts.Duration)
	assert.Equal(t, [3]float32{1, 2, 3}, opts.Camera.Eye)
	assert.Equal(t, float32(60), opts.Camera.FOV)

	require.NoError(t, opts.Validate())
	assert.Equal(t, "desk.mp4", *opts.OutputFile)
	assert.Equal(t, 240, opts.TotalFrames())
}

func TestExplicitFlagEqualToDefaultStillWins(t *testing.T) {
	path := writeConfig(t, `mode = "dry-run"`)
	opts, _, err := Load("desk", []string{"-config", path, "-mode", "window"})
	require.NoError(t, err)
	assert.Equal(t, ModeWindow, *opts.Mode)
}

func TestBadConfig(t *testing.T) {
	path := writeConfig(t, `width = "wide"`)
	_, _, err := Load("desk", []string{"-config", path})
	assert.ErrorContains(t, err, "failed to parse config")

	_, _, err = Load("desk", []string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string][]string{
		"unknown mode":  {"-mode", "vr"},
		"zero width":    {"-width", "0"},
		"zero fps":      {"-mode", "record", "-fps", "0"},
		"zero duration": {"-mode", "record", "-duration", "0"},
		"bad codec":     {"-mode", "record", "-codec", "vp9"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			opts, _, err := Load("desk", args)
			require.NoError(t, err)
			assert.ErrorIs(t, opts.Validate(), ErrInvalid)
		})
	}

	opts, _, err := Load("desk", []string{"-mode", "screenshot"})
	require.NoError(t, err)
	require.NoError(t, opts.Validate())
	assert.Equal(t, "desk.png", *opts.OutputFile)
}

func TestPartialCameraKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[camera]\nfov = 30.0\n")
	opts, _, err := Load("desk", []string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, float32(30), opts.Camera.FOV)
	assert.Equal(t, DefaultCamera().Eye, opts.Camera.Eye)
}
