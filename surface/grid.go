package surface

import (
	"errors"
	"fmt"
)

const maxGridVertices = 1 << 16

var ErrGridTooLarge = errors.New("surface grid exceeds 16-bit vertex indexing")

// A single lattice point of the surface. X and Z are the flat plane
// coordinates, centered at the origin. U grows with X and V grows
// toward the far edge (negative Z).
type Vertex struct {
	X, Z      float64
	U, V      float64
	Elevation float64
}

// A tessellated rectangular plane. The topology is fixed at creation,
// only the vertex elevations change between frames.
type Grid struct {
	segmentsX int
	segmentsZ int
	width     float64
	depth     float64
	vertices  []Vertex
	indices   []uint16
}

// Creates a grid of segmentsX * segmentsZ quads covering a plane of
// the given world size, each quad split into two triangles.
func NewGrid(segmentsX, segmentsZ int, width, depth float64) (*Grid, error) {
	if segmentsX < 1 || segmentsZ < 1 {
		return nil, fmt.Errorf("grid needs at least one segment per axis, got %dx%d", segmentsX, segmentsZ)
	}
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("grid size must be positive, got %gx%g", width, depth)
	}
	cols, rows := segmentsX+1, segmentsZ+1
	if cols*rows > maxGridVertices {
		return nil, fmt.Errorf("%dx%d segments: %w", segmentsX, segmentsZ, ErrGridTooLarge)
	}

	grid := &Grid{
		segmentsX: segmentsX,
		segmentsZ: segmentsZ,
		width:     width,
		depth:     depth,
		vertices:  make([]Vertex, 0, cols*rows),
		indices:   make([]uint16, 0, segmentsX*segmentsZ*6),
	}

	for row := 0; row < rows; row++ {
		v := 1.0 - float64(row)/float64(segmentsZ)
		z := -depth/2 + depth*float64(row)/float64(segmentsZ)
		for col := 0; col < cols; col++ {
			u := float64(col) / float64(segmentsX)
			x := -width/2 + width*u
			grid.vertices = append(grid.vertices, Vertex{X: x, Z: z, U: u, V: v})
		}
	}

	for row := 0; row < segmentsZ; row++ {
		for col := 0; col < segmentsX; col++ {
			a := uint16(row*cols + col)
			b := a + 1
			c := a + uint16(cols)
			d := c + 1
			grid.indices = append(grid.indices, a, c, b, b, c, d)
		}
	}
	return grid, nil
}

// Recomputes the elevation of every vertex for the given frame.
func (self *Grid) Displace(params Params) {
	for i := range self.vertices {
		vert := &self.vertices[i]
		vert.Elevation = Elevation(vert.X, vert.Z, params)
	}
}

// Vertices returns the lattice in row-major order, far row first.
// The slice is owned by the grid and rewritten on each [Grid.Displace].
func (self *Grid) Vertices() []Vertex { return self.vertices }

func (self *Grid) Indices() []uint16 { return self.indices }

func (self *Grid) Segments() (x, z int) { return self.segmentsX, self.segmentsZ }

func (self *Grid) Size() (width, depth float64) { return self.width, self.depth }
