// Package points gives a two-dimensional view over the raw point array of
// a loaded object. Values are the integers the library reports; no
// scaling by step or offset is applied.
package points

import (
	"errors"
	"fmt"

	roaring "github.com/RoaringBitmap/roaring"
	"gonum.org/v1/gonum/mat"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// ErrShapeMismatch is returned when the point count is not cols*rows.
var ErrShapeMismatch = errors.New("point count does not match grid shape")

// Grid is a row-major view: index = row*cols + col.
type Grid struct {
	cols, rows int
	zmin, zmax int32
	special    types.SpecialPoints
	data       []int32
}

// NewGrid wraps the points of c. The slice is shared, not copied.
func NewGrid(c *types.Collection) (*Grid, error) {
	if c == nil {
		return nil, fmt.Errorf("nil collection")
	}
	md := &c.Metadata
	n := md.PointCount()
	if len(c.Points) != n {
		return nil, fmt.Errorf("%w: have %d points, header says %dx%d", ErrShapeMismatch, len(c.Points), md.Cols, md.Rows)
	}
	g := &Grid{
		zmin:    md.ZMin,
		zmax:    md.ZMax,
		special: md.Special,
		data:    c.Points,
	}
	if n > 0 {
		g.cols, g.rows = int(md.Cols), int(md.Rows)
	}
	return g, nil
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Len() int  { return len(g.data) }

// At returns the value at (col, row). It panics when out of range.
func (g *Grid) At(col, row int) int32 {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		panic(fmt.Sprintf("points: index (%d, %d) out of range %dx%d", col, row, g.cols, g.rows))
	}
	return g.data[row*g.cols+col]
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []int32 {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("points: row %d out of range %d", r, g.rows))
	}
	out := make([]int32, g.cols)
	copy(out, g.data[r*g.cols:(r+1)*g.cols])
	return out
}

// Matrix returns the grid as a rows x cols dense matrix, or nil when empty.
func (g *Grid) Matrix() *mat.Dense {
	if len(g.data) == 0 {
		return nil
	}
	vals := make([]float64, len(g.data))
	for i, v := range g.data {
		vals[i] = float64(v)
	}
	return mat.NewDense(g.rows, g.cols, vals)
}

// NonMeasured returns the indices of points outside [ZMin, ZMax]. The
// bitmap is empty unless the header flags non-measured points.
func (g *Grid) NonMeasured() *roaring.Bitmap {
	bm := roaring.New()
	if g.special != types.SpecialPointsNonMeasured {
		return bm
	}
	for i, v := range g.data {
		if v < g.zmin || v > g.zmax {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// Measured returns the count of points that are not flagged non-measured.
func (g *Grid) Measured() int {
	return len(g.data) - int(g.NonMeasured().GetCardinality())
}
