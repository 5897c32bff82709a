package glw

import "golang.org/x/image/math/f32"

// Triangle is three points in normalized device coordinates.
type Triangle struct{ A, B, C f32.Vec2 }

// Vertices returns the points of t as vec3 with z of zero.
func (t Triangle) Vertices() []float32 {
	return []float32{
		t.A[0], t.A[1], 0,
		t.B[0], t.B[1], 0,
		t.C[0], t.C[1], 0,
	}
}

// Quad is four corners in clockwise order starting at top right.
type Quad [4]f32.Vec2

// Vertices returns the corners of q as vec3 with z of zero.
func (q Quad) Vertices() []float32 {
	v := make([]float32, 0, 12)
	for _, p := range q {
		v = append(v, p[0], p[1], 0)
	}
	return v
}

// Indices returns the two triangles covering q.
func (q Quad) Indices() []uint32 { return []uint32{0, 1, 3, 1, 2, 3} }

// UploadTriangle creates a vertex array for t at attribute location zero.
func UploadTriangle(t Triangle) *VertexArray {
	va := new(VertexArray)
	va.Create(STATIC_DRAW, t.Vertices(), nil)
	return va
}

// UploadQuad creates an indexed vertex array for q at attribute location zero.
func UploadQuad(q Quad) *VertexArray {
	va := new(VertexArray)
	va.Create(STATIC_DRAW, q.Vertices(), q.Indices())
	return va
}
