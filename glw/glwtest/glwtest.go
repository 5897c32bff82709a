// Package glwtest provides a glw.Context that records calls instead of
// talking to a driver.
package glwtest

import (
	"fmt"
	"math"
	"strings"

	"dasa.cc/learngl/glw"
)

// Call is one recorded method invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

type shader struct {
	typ glw.Enum
	src string
	ok  bool
	log string
}

type program struct {
	shaders []uint32
	linked  bool
	log     string
}

// Context is a recording glw.Context. The zero value is not usable; see New.
type Context struct {
	// Compiles decides whether src compiles and, if not, the info log.
	// Defaults to DefaultCompiles.
	Compiles func(typ glw.Enum, src string) (ok bool, log string)

	// Uniforms maps uniform names to locations; missing names report -1.
	Uniforms map[string]int32

	Calls []Call

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]byte
	bound    map[glw.Enum]uint32
	live     map[uint32]string
}

// New returns an empty Context.
func New() *Context {
	return &Context{
		Compiles: DefaultCompiles,
		Uniforms: map[string]int32{"ourColor": 0},
		shaders:  make(map[uint32]*shader),
		programs: make(map[uint32]*program),
		buffers:  make(map[uint32][]byte),
		bound:    make(map[glw.Enum]uint32),
		live:     make(map[uint32]string),
	}
}

var _ glw.Context = (*Context)(nil)

// DefaultCompiles accepts any source declaring a main function and a
// version directive.
func DefaultCompiles(typ glw.Enum, src string) (bool, string) {
	switch {
	case !strings.HasPrefix(strings.TrimSpace(src), "#version"):
		return false, "0:1(1): error: missing #version directive"
	case !strings.Contains(src, "void main()"):
		return false, "0:1(1): error: missing main function"
	case strings.Count(src, "{") != strings.Count(src, "}"):
		return false, "0:1(1): error: syntax error, unexpected end of file"
	}
	return true, ""
}

func (c *Context) record(name string, args ...any) { c.Calls = append(c.Calls, Call{name, args}) }

func (c *Context) gen(kind string) uint32 {
	c.next++
	c.live[c.next] = kind
	return c.next
}

func (c *Context) free(name uint32, kind string) {
	if c.live[name] != kind {
		panic(fmt.Sprintf("glwtest: delete of %s %v that is not live", kind, name))
	}
	delete(c.live, name)
}

// Live returns the names of every object created and not yet deleted,
// shaders excluded, keyed to their kind.
func (c *Context) Live() map[uint32]string {
	m := make(map[uint32]string)
	for k, v := range c.live {
		if v != "shader" {
			m[k] = v
		}
	}
	return m
}

// LiveShaders returns the number of shaders not yet deleted.
func (c *Context) LiveShaders() int {
	n := 0
	for _, v := range c.live {
		if v == "shader" {
			n++
		}
	}
	return n
}

// Named returns the recorded calls with name.
func (c *Context) Named(name string) []Call {
	var calls []Call
	for _, call := range c.Calls {
		if call.Name == name {
			calls = append(calls, call)
		}
	}
	return calls
}

// Floats decodes the contents of buf as little endian float32 values.
func (c *Context) Floats(buf uint32) []float32 {
	b := c.buffers[buf]
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24)
	}
	return v
}

// Uints decodes the contents of buf as little endian uint32 values.
func (c *Context) Uints(buf uint32) []uint32 {
	b := c.buffers[buf]
	v := make([]uint32, len(b)/4)
	for i := range v {
		v[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return v
}

// Reset forgets recorded calls.
func (c *Context) Reset() { c.Calls = nil }

func (c *Context) CreateShader(typ glw.Enum) uint32 {
	shd := c.gen("shader")
	c.shaders[shd] = &shader{typ: typ}
	c.record("CreateShader", typ)
	return shd
}

func (c *Context) ShaderSource(shd uint32, src string) {
	c.shaders[shd].src = src
	c.record("ShaderSource", shd)
}

func (c *Context) CompileShader(shd uint32) {
	s := c.shaders[shd]
	s.ok, s.log = c.Compiles(s.typ, s.src)
	c.record("CompileShader", shd)
}

func (c *Context) GetShaderi(shd uint32, pname glw.Enum) int32 {
	s := c.shaders[shd]
	switch pname {
	case glw.COMPILE_STATUS:
		if s.ok {
			return glw.TRUE
		}
		return glw.FALSE
	case glw.INFO_LOG_LENGTH:
		return int32(len(s.log))
	}
	return 0
}

func (c *Context) GetShaderInfoLog(shd uint32) string { return c.shaders[shd].log }

func (c *Context) DeleteShader(shd uint32) {
	c.free(shd, "shader")
	c.record("DeleteShader", shd)
}

func (c *Context) CreateProgram() uint32 {
	prg := c.gen("program")
	c.programs[prg] = &program{}
	c.record("CreateProgram")
	return prg
}

func (c *Context) AttachShader(prg, shd uint32) {
	p := c.programs[prg]
	p.shaders = append(p.shaders, shd)
	c.record("AttachShader", prg, shd)
}

func (c *Context) LinkProgram(prg uint32) {
	p := c.programs[prg]
	p.linked, p.log = true, ""
	for _, shd := range p.shaders {
		if s := c.shaders[shd]; !s.ok {
			p.linked = false
			p.log = "error: linking with uncompiled/unspecialized shader"
		}
	}
	if p.linked && len(p.shaders) != 2 {
		p.linked, p.log = false, "error: program lacks a vertex or fragment stage"
	}
	c.record("LinkProgram", prg)
}

func (c *Context) GetProgrami(prg uint32, pname glw.Enum) int32 {
	p := c.programs[prg]
	switch pname {
	case glw.LINK_STATUS:
		if p.linked {
			return glw.TRUE
		}
		return glw.FALSE
	case glw.INFO_LOG_LENGTH:
		return int32(len(p.log))
	}
	return 0
}

func (c *Context) GetProgramInfoLog(prg uint32) string { return c.programs[prg].log }

func (c *Context) UseProgram(prg uint32) { c.record("UseProgram", prg) }

func (c *Context) DeleteProgram(prg uint32) {
	c.free(prg, "program")
	c.record("DeleteProgram", prg)
}

func (c *Context) GetUniformLocation(prg uint32, name string) int32 {
	c.record("GetUniformLocation", prg, name)
	if loc, ok := c.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	c.record("Uniform4f", loc, v0, v1, v2, v3)
}

func (c *Context) CreateBuffer() uint32 {
	buf := c.gen("buffer")
	c.record("CreateBuffer")
	return buf
}

func (c *Context) BindBuffer(target glw.Enum, buf uint32) {
	c.bound[target] = buf
	c.record("BindBuffer", target, buf)
}

func (c *Context) BufferData(target glw.Enum, src []byte, usage glw.Enum) {
	c.buffers[c.bound[target]] = append([]byte(nil), src...)
	c.record("BufferData", target, len(src), usage)
}

func (c *Context) DeleteBuffer(buf uint32) {
	c.free(buf, "buffer")
	c.record("DeleteBuffer", buf)
}

func (c *Context) CreateVertexArray() uint32 {
	vao := c.gen("vertexarray")
	c.record("CreateVertexArray")
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	if vao != 0 {
		if _, ok := c.live[vao]; !ok {
			panic(fmt.Sprintf("glwtest: bind of deleted vertex array %v", vao))
		}
	}
	c.bound[0] = vao
	c.record("BindVertexArray", vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.free(vao, "vertexarray")
	c.record("DeleteVertexArray", vao)
}

// BoundVertexArray returns the currently bound vertex array.
func (c *Context) BoundVertexArray() uint32 { return c.bound[0] }

func (c *Context) EnableVertexAttribArray(idx uint32) { c.record("EnableVertexAttribArray", idx) }

func (c *Context) VertexAttribPointer(idx uint32, size int32, typ glw.Enum, normalized bool, stride, offset int32) {
	c.record("VertexAttribPointer", idx, size, typ, normalized, stride, offset)
}

func (c *Context) DrawArrays(mode glw.Enum, first, count int32) {
	c.record("DrawArrays", mode, first, count)
}

func (c *Context) DrawElements(mode glw.Enum, count int32, typ glw.Enum, offset int32) {
	c.record("DrawElements", mode, count, typ, offset)
}

func (c *Context) ClearColor(r, g, b, a float32) { c.record("ClearColor", r, g, b, a) }
func (c *Context) Clear(mask glw.Enum)           { c.record("Clear", mask) }

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport", x, y, width, height)
}

func (c *Context) PolygonMode(face, mode glw.Enum) { c.record("PolygonMode", face, mode) }
