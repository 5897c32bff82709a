// Package glw wraps the handful of GL calls needed to compile a shader
// program and draw vertex arrays.
//
// All calls go through the Context installed with With. Programs and buffers
// are plain handles; they hold no reference to the Context they were made
// with.
package glw

import (
	"context"
	"log/slog"

	"golang.org/x/image/math/f32"
)

// Enum is a GL enumerant.
type Enum uint32

const (
	FALSE = 0
	TRUE  = 1

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005

	FRONT_AND_BACK Enum = 0x0408
	POINT          Enum = 0x1B00
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02

	UNSIGNED_INT Enum = 0x1405
	FLOAT        Enum = 0x1406

	COLOR_BUFFER_BIT Enum = 0x00004000

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	STREAM_DRAW          Enum = 0x88E0
	STATIC_DRAW          Enum = 0x88E4
	DYNAMIC_DRAW         Enum = 0x88E8

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	INFO_LOG_LENGTH Enum = 0x8B84
)

// Context is the subset of an OpenGL 3.3 core context used by this package.
type Context interface {
	CreateShader(typ Enum) uint32
	ShaderSource(shd uint32, src string)
	CompileShader(shd uint32)
	GetShaderi(shd uint32, pname Enum) int32
	GetShaderInfoLog(shd uint32) string
	DeleteShader(shd uint32)

	CreateProgram() uint32
	AttachShader(prg, shd uint32)
	LinkProgram(prg uint32)
	GetProgrami(prg uint32, pname Enum) int32
	GetProgramInfoLog(prg uint32) string
	UseProgram(prg uint32)
	DeleteProgram(prg uint32)

	GetUniformLocation(prg uint32, name string) int32
	Uniform4f(loc int32, v0, v1, v2, v3 float32)

	CreateBuffer() uint32
	BindBuffer(target Enum, buf uint32)
	BufferData(target Enum, src []byte, usage Enum)
	DeleteBuffer(buf uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	EnableVertexAttribArray(idx uint32)
	VertexAttribPointer(idx uint32, size int32, typ Enum, normalized bool, stride, offset int32)

	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int32)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	Viewport(x, y, width, height int32)
	PolygonMode(face, mode Enum)
}

var (
	ctx    Context
	logger = slog.New(nopHandler{})
)

// TODO allow package to be used by multiple contexts in parallel.
func With(glctx Context) Context { ctx = glctx; return glctx }

// SetLogger sets where shader diagnostics are written. Nil discards them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// ClearColor clears the color buffer to c.
func ClearColor(c f32.Vec4) {
	ctx.ClearColor(c[0], c[1], c[2], c[3])
	ctx.Clear(COLOR_BUFFER_BIT)
}

// PolygonMode sets rasterization for front and back faces to mode,
// either FILL or LINE.
func PolygonMode(mode Enum) { ctx.PolygonMode(FRONT_AND_BACK, mode) }

// Viewport sets the viewport to the rectangle at origin of width and height.
func Viewport(width, height int) { ctx.Viewport(0, 0, int32(width), int32(height)) }
