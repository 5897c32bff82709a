package glw

import "math"

// FloatBuffer is an ARRAY_BUFFER of float32 values.
type FloatBuffer struct {
	Buffer uint32
	bin    []byte
	count  int
	usage  Enum
}

// Create generates the buffer, binds it and uploads data with usage hint.
func (buf *FloatBuffer) Create(usage Enum, data []float32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf FloatBuffer) Delete()  { ctx.DeleteBuffer(buf.Buffer) }
func (buf FloatBuffer) Bind()    { ctx.BindBuffer(ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Unbind()  { ctx.BindBuffer(ARRAY_BUFFER, 0) }
func (buf FloatBuffer) Len() int { return buf.count }

// Update replaces buffer contents with data; buffer must be bound.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	if len(buf.bin) < len(data)*4 {
		buf.bin = make([]byte, len(data)*4)
	}
	buf.bin = buf.bin[:len(data)*4]
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	ctx.BufferData(ARRAY_BUFFER, buf.bin, buf.usage)
}

// UintBuffer is an ELEMENT_ARRAY_BUFFER of uint32 indices.
type UintBuffer struct {
	Buffer uint32
	bin    []byte
	count  int
	usage  Enum
}

// Create generates the buffer, binds it and uploads data with usage hint.
func (buf *UintBuffer) Create(usage Enum, data []uint32) {
	buf.usage = usage
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf UintBuffer) Delete()  { ctx.DeleteBuffer(buf.Buffer) }
func (buf UintBuffer) Bind()    { ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, buf.Buffer) }
func (buf UintBuffer) Unbind()  { ctx.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) }
func (buf UintBuffer) Len() int { return buf.count }

// Update replaces buffer contents with data; buffer must be bound.
func (buf *UintBuffer) Update(data []uint32) {
	buf.count = len(data)
	if len(buf.bin) < len(data)*4 {
		buf.bin = make([]byte, len(data)*4)
	}
	buf.bin = buf.bin[:len(data)*4]
	for i, u := range data {
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	ctx.BufferData(ELEMENT_ARRAY_BUFFER, buf.bin, buf.usage)
}

// VertexArray is a vertex array object describing Floats at attribute
// location Attrib, optionally indexed by Uints.
type VertexArray struct {
	Attrib A3fv
	Floats FloatBuffer
	Uints  UintBuffer

	vao     uint32
	indexed bool
}

// Create generates and binds the vertex array object, uploads vertices as
// tightly packed vec3 and, when indices is not empty, an element buffer.
// The vertex array is left unbound.
func (va *VertexArray) Create(usage Enum, vertices []float32, indices []uint32) {
	va.vao = ctx.CreateVertexArray()
	ctx.BindVertexArray(va.vao)

	va.Floats.Create(usage, vertices)
	if va.indexed = len(indices) > 0; va.indexed {
		va.Uints.Create(usage, indices)
	}
	va.Attrib.Pointer()

	ctx.BindVertexArray(0)
}

// Name returns the vertex array object handle.
func (va *VertexArray) Name() uint32 { return va.vao }

// Count returns the number of vertices or indices Draw submits.
func (va *VertexArray) Count() int {
	if va.indexed {
		return va.Uints.Len()
	}
	return va.Floats.Len() / 3
}

func (va *VertexArray) Bind()   { ctx.BindVertexArray(va.vao) }
func (va *VertexArray) Unbind() { ctx.BindVertexArray(0) }

// Draw binds the vertex array and renders primitives of mode.
func (va *VertexArray) Draw(mode Enum) {
	va.Bind()
	if va.indexed {
		ctx.DrawElements(mode, int32(va.Uints.Len()), UNSIGNED_INT, 0)
	} else {
		ctx.DrawArrays(mode, 0, int32(va.Count()))
	}
}

// Delete frees the vertex array object and every buffer it created.
func (va *VertexArray) Delete() {
	ctx.DeleteVertexArray(va.vao)
	va.Floats.Delete()
	if va.indexed {
		va.Uints.Delete()
	}
}
