package mesh

// Face colors of the unit cube.
var (
	Red     = [3]float32{1, 0, 0}
	Green   = [3]float32{0, 1, 0}
	Blue    = [3]float32{0, 0, 1}
	Yellow  = [3]float32{1, 1, 0}
	Magenta = [3]float32{1, 0, 1}
	Cyan    = [3]float32{0, 1, 1}
)

// Cube returns a unit cube centred on the origin. Each face has its own
// four vertices so colors do not blend across edges. Triangles wind
// counter-clockwise seen from outside.
func Cube() *Mesh {
	const h = 0.5
	face := func(c [3]float32, corners ...[3]float32) []Vertex {
		vs := make([]Vertex, len(corners))
		for i, p := range corners {
			vs[i] = Vertex{Position: p, Color: c}
		}
		return vs
	}

	var vs []Vertex
	// front (+z), red
	vs = append(vs, face(Red, [3]float32{-h, -h, h}, [3]float32{h, -h, h}, [3]float32{h, h, h}, [3]float32{-h, h, h})...)
	// back (-z), green
	vs = append(vs, face(Green, [3]float32{-h, -h, -h}, [3]float32{h, -h, -h}, [3]float32{h, h, -h}, [3]float32{-h, h, -h})...)
	// top (+y), blue
	vs = append(vs, face(Blue, [3]float32{-h, h, h}, [3]float32{h, h, h}, [3]float32{h, h, -h}, [3]float32{-h, h, -h})...)
	// bottom (-y), yellow
	vs = append(vs, face(Yellow, [3]float32{-h, -h, h}, [3]float32{h, -h, h}, [3]float32{h, -h, -h}, [3]float32{-h, -h, -h})...)
	// right (+x), magenta
	vs = append(vs, face(Magenta, [3]float32{h, -h, h}, [3]float32{h, -h, -h}, [3]float32{h, h, -h}, [3]float32{h, h, h})...)
	// left (-x), cyan
	vs = append(vs, face(Cyan, [3]float32{-h, -h, h}, [3]float32{-h, -h, -h}, [3]float32{-h, h, -h}, [3]float32{-h, h, h})...)

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 6, 5, 4, 7, 6,
		8, 9, 10, 10, 11, 8,
		12, 14, 13, 12, 15, 14,
		16, 17, 18, 18, 19, 16,
		20, 22, 21, 20, 23, 22,
	}

	m, err := New(vs, indices)
	if err != nil {
		panic(err)
	}
	return m
}
