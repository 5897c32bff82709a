package app

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dasa.cc/learngl/glw"
	"dasa.cc/learngl/glw/glwtest"
	"dasa.cc/learngl/nui"
	"dasa.cc/learngl/nui/nuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) (*App, *glwtest.Context, *nuitest.Window, *bytes.Buffer) {
	t.Helper()
	ctx := glwtest.New()
	win := nuitest.New(cfg.Width, cfg.Height)
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a, err := New(cfg, win, ctx, log)
	require.NoError(t, err)
	t.Cleanup(func() { glw.With(nil); glw.SetLogger(nil) })
	return a, ctx, win, &logs
}

func TestRunTriangle(t *testing.T) {
	a, ctx, win, _ := newTestApp(t, Default())
	win.CloseAfter = 1

	vaos := ctx.Named("CreateVertexArray")
	require.Len(t, vaos, 1)
	require.Len(t, a.arrays, 1)
	assert.Equal(t, []float32{0.5, -0.5, 0, -0.5, -0.5, 0, 0, 0.5, 0}, ctx.Floats(a.arrays[0].Floats.Buffer))
	assert.True(t, a.prg.Linked())

	ctx.Reset()
	assert.Equal(t, 1, a.Run())

	draws := ctx.Named("DrawArrays")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{glw.TRIANGLES, int32(0), int32(3)}, draws[0].Args)
	assert.Empty(t, ctx.Named("DrawElements"))

	assert.Equal(t, []any{float32(0.2), float32(0.3), float32(0.3), float32(1)}, ctx.Named("ClearColor")[0].Args)
	assert.Equal(t, []any{glw.COLOR_BUFFER_BIT}, ctx.Named("Clear")[0].Args)
	assert.Len(t, ctx.Named("UseProgram"), 1)
	assert.Len(t, ctx.Named("Uniform4f"), 1)
	assert.Equal(t, 1, win.Swaps)

	assert.Empty(t, ctx.Live(), "every GL object should be released")
	assert.Zero(t, ctx.LiveShaders())
}

func TestReleaseOnce(t *testing.T) {
	a, ctx, win, _ := newTestApp(t, Default())
	win.CloseAfter = 2
	a.Run()
	n := len(ctx.Named("DeleteProgram"))
	a.Close()
	assert.Equal(t, n, len(ctx.Named("DeleteProgram")))
	assert.Equal(t, 1, len(ctx.Named("DeleteVertexArray")))
	assert.Equal(t, 1, len(ctx.Named("DeleteBuffer")))
	assert.True(t, win.Destroyed)
}

func TestCloseWithoutRun(t *testing.T) {
	a, ctx, win, _ := newTestApp(t, Default())
	a.Close()
	assert.Empty(t, ctx.Live())
	assert.True(t, win.Destroyed)
}

func TestRunPair(t *testing.T) {
	cfg := Default()
	cfg.Shape = ShapePair
	a, ctx, win, _ := newTestApp(t, cfg)
	win.CloseAfter = 1

	require.Len(t, a.arrays, 2)
	assert.Equal(t, Pair[1].Vertices(), ctx.Floats(a.arrays[1].Floats.Buffer))

	ctx.Reset()
	a.Run()
	draws := ctx.Named("DrawArrays")
	require.Len(t, draws, 2)
	for _, d := range draws {
		assert.Equal(t, []any{glw.TRIANGLES, int32(0), int32(3)}, d.Args)
	}
	assert.Empty(t, ctx.Live())
}

func TestRunQuad(t *testing.T) {
	cfg := Default()
	cfg.Shape = ShapeQuad
	a, ctx, win, _ := newTestApp(t, cfg)
	win.CloseAfter = 1

	ctx.Reset()
	a.Run()
	draws := ctx.Named("DrawElements")
	require.Len(t, draws, 1)
	assert.Equal(t, []any{glw.TRIANGLES, int32(6), glw.UNSIGNED_INT, int32(0)}, draws[0].Args)
	assert.Empty(t, ctx.Live())
}

func TestViewportFollowsResize(t *testing.T) {
	_, ctx, win, _ := newTestApp(t, Default())
	require.Equal(t, []any{int32(0), int32(0), int32(800), int32(600)}, ctx.Named("Viewport")[0].Args)

	ctx.Reset()
	win.Resize(1920, 1080)
	calls := ctx.Named("Viewport")
	require.Len(t, calls, 1)
	assert.Equal(t, []any{int32(0), int32(0), int32(1920), int32(1080)}, calls[0].Args)
}

func TestInputTogglesPolygonMode(t *testing.T) {
	a, ctx, win, _ := newTestApp(t, Default())
	win.Press(nui.Key2)
	win.OnPoll = func(polls int) {
		switch polls {
		case 1:
			win.Release(nui.Key2)
		case 2:
			win.Press(nui.Key1)
		case 3:
			win.Press(nui.KeyEscape)
		}
	}

	assert.Equal(t, 3, a.Run())
	modes := ctx.Named("PolygonMode")
	require.Len(t, modes, 3)
	assert.Equal(t, []any{glw.FRONT_AND_BACK, glw.LINE}, modes[0].Args)
	assert.Equal(t, []any{glw.FRONT_AND_BACK, glw.FILL}, modes[1].Args)
	assert.Equal(t, []any{glw.FRONT_AND_BACK, glw.FILL}, modes[2].Args)
	assert.Equal(t, nui.ModeFill, a.Mode())
}

func TestMalformedShaderContinues(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "bad.frag")
	require.NoError(t, os.WriteFile(frag, []byte("#version 330 core\nvoid main() {"), 0o644))

	cfg := Default()
	cfg.FragmentShader = frag
	a, ctx, win, logs := newTestApp(t, cfg)
	win.CloseAfter = 1

	assert.False(t, a.prg.Linked())
	assert.Contains(t, logs.String(), "shader compilation failed")
	assert.Contains(t, logs.String(), "continuing with unusable shader program")

	assert.Equal(t, 1, a.Run())
	assert.Len(t, ctx.Named("DrawArrays"), 1)
	assert.Empty(t, ctx.Live())
}

func TestStrictShadersFail(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "bad.frag")
	require.NoError(t, os.WriteFile(frag, []byte("void main() {}"), 0o644))

	cfg := Default()
	cfg.FragmentShader = frag
	cfg.StrictShaders = true

	ctx := glwtest.New()
	t.Cleanup(func() { glw.With(nil); glw.SetLogger(nil) })
	_, err := New(cfg, nuitest.New(800, 600), ctx, nil)
	require.Error(t, err)
	var serr *glw.ShaderError
	assert.ErrorAs(t, err, &serr)
	assert.Empty(t, ctx.Live())
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Shape = "teapot"
	_, err := New(cfg, nuitest.New(800, 600), glwtest.New(), nil)
	assert.ErrorContains(t, err, `unknown shape "teapot"`)
}

func TestPulse(t *testing.T) {
	assert.InDelta(t, 0.5, Pulse(0)[1], 1e-6)
	assert.InDelta(t, 1, Pulse(math.Pi/2)[1], 1e-6)
	assert.InDelta(t, 0, Pulse(3*math.Pi/2)[1], 1e-6)
	assert.Equal(t, float32(1), Pulse(42)[3])
}

func TestReloadOnShaderChange(t *testing.T) {
	dir := t.TempDir()
	frag := filepath.Join(dir, "color.frag")
	require.NoError(t, os.WriteFile(frag, []byte(DefaultFragmentShader), 0o644))

	cfg := Default()
	cfg.FragmentShader = frag
	cfg.Watch = true
	a, ctx, _, logs := newTestApp(t, cfg)
	defer a.Close()

	first := a.prg.Program
	require.NoError(t, os.WriteFile(frag, []byte(DefaultFragmentShader+"\n// edited\n"), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	for a.prg.Program == first && time.Now().Before(deadline) {
		a.Draw(0)
		time.Sleep(10 * time.Millisecond)
	}
	require.NotEqual(t, first, a.prg.Program, "program not rebuilt after shader file changed")
	assert.True(t, a.prg.Linked())
	assert.Contains(t, logs.String(), "reloaded")

	// old program was deleted and only the new one remains
	live := ctx.Live()
	assert.Equal(t, "program", live[a.prg.Program])
	_, ok := live[first]
	assert.False(t, ok)

	// a broken edit keeps the current program
	current := a.prg.Program
	require.NoError(t, os.WriteFile(frag, []byte("void main() {"), 0o644))
	deadline = time.Now().Add(5 * time.Second)
	for !bytes.Contains(logs.Bytes(), []byte("keeping current program")) && time.Now().Before(deadline) {
		a.Draw(0)
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, current, a.prg.Program)
}
