// Package gogl implements glw.Context with github.com/go-gl/gl.
package gogl

import (
	"strings"

	"dasa.cc/learngl/glw"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads GL function pointers for the current context.
func Init() error { return gl.Init() }

// Version returns the version string of the current context.
func Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

// Context calls straight into the current GL context.
type Context struct{}

var _ glw.Context = Context{}

func (Context) CreateShader(typ glw.Enum) uint32 { return gl.CreateShader(uint32(typ)) }

func (Context) ShaderSource(shd uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shd, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shd uint32) { gl.CompileShader(shd) }

func (Context) GetShaderi(shd uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetShaderiv(shd, uint32(pname), &v)
	return v
}

func (c Context) GetShaderInfoLog(shd uint32) string {
	n := c.GetShaderi(shd, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shd, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) DeleteShader(shd uint32) { gl.DeleteShader(shd) }

func (Context) CreateProgram() uint32        { return gl.CreateProgram() }
func (Context) AttachShader(prg, shd uint32) { gl.AttachShader(prg, shd) }
func (Context) LinkProgram(prg uint32)       { gl.LinkProgram(prg) }
func (Context) UseProgram(prg uint32)        { gl.UseProgram(prg) }
func (Context) DeleteProgram(prg uint32)     { gl.DeleteProgram(prg) }

func (Context) GetProgrami(prg uint32, pname glw.Enum) int32 {
	var v int32
	gl.GetProgramiv(prg, uint32(pname), &v)
	return v
}

func (c Context) GetProgramInfoLog(prg uint32) string {
	n := c.GetProgrami(prg, glw.INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(prg, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) GetUniformLocation(prg uint32, name string) int32 {
	return gl.GetUniformLocation(prg, gl.Str(name+"\x00"))
}

func (Context) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4f(loc, v0, v1, v2, v3) }

func (Context) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Context) BindBuffer(target glw.Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	if len(src) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (Context) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (Context) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Context) BindVertexArray(vao uint32)         { gl.BindVertexArray(vao) }
func (Context) DeleteVertexArray(vao uint32)       { gl.DeleteVertexArrays(1, &vao) }
func (Context) EnableVertexAttribArray(idx uint32) { gl.EnableVertexAttribArray(idx) }

func (Context) VertexAttribPointer(idx uint32, size int32, typ glw.Enum, normalized bool, stride, offset int32) {
	gl.VertexAttribPointer(idx, size, uint32(typ), normalized, stride, gl.PtrOffset(int(offset)))
}

func (Context) DrawArrays(mode glw.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (Context) DrawElements(mode glw.Enum, count int32, typ glw.Enum, offset int32) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(int(offset)))
}

func (Context) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask glw.Enum)                { gl.Clear(uint32(mask)) }
func (Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Context) PolygonMode(face, mode glw.Enum)    { gl.PolygonMode(uint32(face), uint32(mode)) }
