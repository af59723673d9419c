package canvas

import "math"

type segmentKind int

const (
	segMove segmentKind = iota
	segLine
	segArc
	segClose
)

type segment struct {
	kind   segmentKind
	p      Point // target point, or arc centre
	r      float64
	a0, a1 float64
}

// pathBuilder tracks the current path with canvas semantics so implementations
// can replay it and detect paths a canvas would not paint.
type pathBuilder struct {
	segs   []segment
	start  Point
	cur    Point
	hasCur bool
}

func (b *pathBuilder) reset() {
	b.segs = b.segs[:0]
	b.hasCur = false
	b.start = Point{}
	b.cur = Point{}
}

func (b *pathBuilder) moveTo(p Point) {
	b.segs = append(b.segs, segment{kind: segMove, p: p})
	b.start = p
	b.cur = p
	b.hasCur = true
}

func (b *pathBuilder) lineTo(p Point) {
	if !b.hasCur {
		b.moveTo(p)
		return
	}
	b.segs = append(b.segs, segment{kind: segLine, p: p})
	b.cur = p
}

func (b *pathBuilder) arc(c Point, r, a0, a1 float64) {
	startPt := Point{c.X + r*math.Cos(a0), c.Y + r*math.Sin(a0)}
	endPt := Point{c.X + r*math.Cos(a1), c.Y + r*math.Sin(a1)}
	if !b.hasCur {
		b.start = startPt
	}
	b.segs = append(b.segs, segment{kind: segArc, p: c, r: r, a0: a0, a1: a1})
	b.cur = endPt
	b.hasCur = true
}

func (b *pathBuilder) rect(x, y, w, h float64) {
	b.moveTo(Point{x, y})
	b.lineTo(Point{x + w, y})
	b.lineTo(Point{x + w, y + h})
	b.lineTo(Point{x, y + h})
	b.closePath()
}

func (b *pathBuilder) closePath() {
	if !b.hasCur {
		return
	}
	b.segs = append(b.segs, segment{kind: segClose})
	b.cur = b.start
}

// degenerate reports whether every point of the path coincides. A canvas
// paints nothing for such a path with either fill or butt-capped stroke.
func (b *pathBuilder) degenerate() bool {
	var first Point
	seen := false
	for _, s := range b.segs {
		switch s.kind {
		case segClose:
			continue
		case segArc:
			if s.r > 0 && s.a0 != s.a1 {
				return false
			}
		}
		if !seen {
			first = s.p
			seen = true
			continue
		}
		if s.p != first {
			return false
		}
	}
	return true
}
