package app

import (
	"dasa.cc/learngl/glw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Unit shapes placed into clip space by 2D homogeneous transforms.
var (
	unitTriangle = [3]mgl32.Vec2{{0, 0}, {0.5, 1}, {1, 0}}

	// clockwise from top right, matching glw.Quad
	unitSquare = [4]mgl32.Vec2{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// Place maps each point through m.
func Place(m mgl32.Mat3, pts ...mgl32.Vec2) []f32.Vec2 {
	out := make([]f32.Vec2, len(pts))
	for i, p := range pts {
		v := m.Mul3x1(p.Vec3(1))
		out[i] = f32.Vec2{v[0], v[1]}
	}
	return out
}

// PlaceTriangle returns the unit triangle transformed by m.
func PlaceTriangle(m mgl32.Mat3) glw.Triangle {
	p := Place(m, unitTriangle[:]...)
	return glw.Triangle{A: p[0], B: p[1], C: p[2]}
}

// PlaceQuad returns the unit square, spanning -1 to 1, transformed by m.
func PlaceQuad(m mgl32.Mat3) glw.Quad {
	p := Place(m, unitSquare[:]...)
	return glw.Quad{p[0], p[1], p[2], p[3]}
}

// Triangle is the shape drawn by default.
var Triangle = glw.Triangle{
	A: f32.Vec2{0.5, -0.5},
	B: f32.Vec2{-0.5, -0.5},
	C: f32.Vec2{0, 0.5},
}

// Pair is two triangles side by side, the left shifted one unit from the right.
var Pair = [2]glw.Triangle{
	PlaceTriangle(mgl32.Translate2D(-1, 0)),
	PlaceTriangle(mgl32.Ident3()),
}

// Quad is a centered square drawn from an element buffer.
var Quad = PlaceQuad(mgl32.Scale2D(0.5, 0.5))
