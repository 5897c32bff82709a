package glw

// A3fv is a vertex attribute location sourcing three floats per vertex.
type A3fv uint32

func (a A3fv) Enable() { ctx.EnableVertexAttribArray(uint32(a)) }

// Pointer enables a and points it at the bound ARRAY_BUFFER, tightly packed
// and not normalized.
func (a A3fv) Pointer() {
	a.Enable()
	ctx.VertexAttribPointer(uint32(a), 3, FLOAT, false, 0, 0)
}

// U4f is a vec4 uniform location. A location of -1 is ignored by GL.
type U4f int32

func (u U4f) Set(v0, v1, v2, v3 float32) { ctx.Uniform4f(int32(u), v0, v1, v2, v3) }
