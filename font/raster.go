package font

import (
	"math"
	"slices"

	"github.com/katalvlaran/gridkit/grid"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// curveSteps is the number of line segments a curve is flattened into.
const curveSteps = 16

type point struct{ x, y float64 }

type edge struct{ a, b point }

// outline flattens glyph segments into closed polygons. sfnt places the
// baseline at y=0 with y growing downwards; shifting by lineHeight moves the
// baseline to the bottom of the cell.
func outline(segs sfnt.Segments, lineHeight float64) []edge {
	pt := func(p fixed.Point26_6) point {
		return point{float64(p.X) / 64, float64(p.Y)/64 + lineHeight}
	}

	var (
		edges      []edge
		start, cur point
		open       bool
	)
	closePath := func() {
		if open && cur != start {
			edges = append(edges, edge{cur, start})
		}
	}

	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			closePath()
			start, cur, open = pt(s.Args[0]), pt(s.Args[0]), true
		case sfnt.SegmentOpLineTo:
			next := pt(s.Args[0])
			edges = append(edges, edge{cur, next})
			cur = next
		case sfnt.SegmentOpQuadTo:
			c, end := pt(s.Args[0]), pt(s.Args[1])
			edges = appendCurve(edges, cur, end, func(t, u float64) point {
				return point{
					u*u*cur.x + 2*u*t*c.x + t*t*end.x,
					u*u*cur.y + 2*u*t*c.y + t*t*end.y,
				}
			})
			cur = end
		case sfnt.SegmentOpCubeTo:
			c1, c2, end := pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
			edges = appendCurve(edges, cur, end, func(t, u float64) point {
				return point{
					u*u*u*cur.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*end.x,
					u*u*u*cur.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*end.y,
				}
			})
			cur = end
		}
	}
	closePath()

	return edges
}

// appendCurve samples at(t, 1-t) for t in (0, 1] and appends the chords.
// The final chord ends exactly at end.
func appendCurve(edges []edge, from, end point, at func(t, u float64) point) []edge {
	prev := from
	for i := 1; i <= curveSteps; i++ {
		next := end
		if i < curveSteps {
			t := float64(i) / curveSteps
			next = at(t, 1-t)
		}
		edges = append(edges, edge{prev, next})
		prev = next
	}

	return edges
}

// fill rasterises edges into a size × size grid. Each pixel row is sampled
// at its centre; sorted crossings are paired left to right and every pixel
// from floor(left) up to ceil(right) is set.
func fill(edges []edge, size int) *grid.Grid[bool] {
	g := grid.Filled(size, size, false)

	var xs []float64
	for y := 0; y < size; y++ {
		scan := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if (e.a.y <= scan) == (e.b.y <= scan) {
				continue
			}
			k := (scan - e.a.y) / (e.b.y - e.a.y)
			xs = append(xs, e.a.x+k*(e.b.x-e.a.x))
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			from := max(int(math.Floor(xs[i])), 0)
			to := min(int(math.Ceil(xs[i+1])), size)
			for x := from; x < to; x++ {
				g.Put(y*size+x, true)
			}
		}
	}

	return g
}
