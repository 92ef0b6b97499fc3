package terrain

// Vertex is a ground mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32 // 0..1 across the field; the shader applies tiling
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Mesh holds ground mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// BuildGround builds a grid of segments x segments quads covering hf.
// Segments below 1 are treated as 1.
func BuildGround(hf *Heightfield, segments int) *Mesh {
	segments = max(segments, 1)
	row := segments + 1

	m := &Mesh{
		Vertices: make([]Vertex, 0, row*row),
		Indices:  make([]uint32, 0, segments*segments*6),
		Bounds: Bounds{
			Min: [3]float32{1e10, 1e10, 1e10},
			Max: [3]float32{-1e10, -1e10, -1e10},
		},
	}

	half := hf.Size() / 2
	step := hf.Size() / float32(segments)
	for z := 0; z < row; z++ {
		for x := 0; x < row; x++ {
			wx := float32(x)*step - half
			wz := float32(z)*step - half
			pos := [3]float32{wx, hf.HeightAt(wx, wz), wz}
			m.Vertices = append(m.Vertices, Vertex{
				Position: pos,
				Normal:   hf.NormalAt(wx, wz),
				TexCoord: [2]float32{float32(x) / float32(segments), float32(z) / float32(segments)},
			})
			m.Bounds.extend(pos)
		}
	}

	// Counter-clockwise seen from +Y.
	for z := 0; z < segments; z++ {
		for x := 0; x < segments; x++ {
			i := uint32(z*row + x)
			r := uint32(row)
			m.Indices = append(m.Indices,
				i, i+r, i+1,
				i+1, i+r, i+r+1,
			)
		}
	}
	return m
}

func (b *Bounds) extend(p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}
