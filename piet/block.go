package piet

// Block is the maximal 4-connected region of equal-colored codels
// containing some starting codel (spec.md section 3). White and black
// regions are never represented as a Block in the instruction sense
// (see vm.Machine for how the engine treats them); FindBlock will
// still happily flood-fill one if asked, since the region-finder
// itself is color-agnostic.
type Block struct {
	Color   Color
	members []Point
}

// Size is the codel count of the block; push uses this directly.
func (b *Block) Size() int { return len(b.members) }

// FindBlock computes the 4-connected block containing (x, y) via flood
// fill. Returns nil if (x, y) is out of bounds.
func FindBlock(g *Grid, x, y int) *Block {
	if !g.InBounds(x, y) {
		return nil
	}
	c := g.ColorAt(x, y)
	seen := make(map[Point]bool)
	stack := []Point{{x, y}}
	seen[Point{x, y}] = true
	var members []Point

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		members = append(members, p)

		for _, d := range []Direction{Right, Down, Left, Up} {
			dx, dy := d.Delta()
			np := Point{p.X + dx, p.Y + dy}
			if seen[np] || !g.InBounds(np.X, np.Y) || g.ColorAt(np.X, np.Y) != c {
				continue
			}
			seen[np] = true
			stack = append(stack, np)
		}
	}

	return &Block{Color: c, members: members}
}

// ExitCodel selects the exit codel for the given (DP, CC), per the
// two-step rule in spec.md section 4.3: maximize coordinate along DP,
// then among ties maximize coordinate along DP rotated toward CC.
func (b *Block) ExitCodel(dp Direction, cc Chooser) Point {
	best := b.members[0]
	for _, p := range b.members[1:] {
		if dpCompare(p, best, dp) > 0 {
			best = p
		}
	}

	perp := dp.Perpendicular(cc)
	candidates := make([]Point, 0, 1)
	for _, p := range b.members {
		if dpCompare(p, best, dp) == 0 {
			candidates = append(candidates, p)
		}
	}
	best = candidates[0]
	for _, p := range candidates[1:] {
		if dpCompare(p, best, perp) > 0 {
			best = p
		}
	}
	return best
}

// dpCompare compares two points along the axis d points toward: it
// returns >0 if p is further along d than q, 0 if tied, <0 otherwise.
func dpCompare(p, q Point, d Direction) int {
	dx, dy := d.Delta()
	switch {
	case dx > 0:
		return p.X - q.X
	case dx < 0:
		return q.X - p.X
	case dy > 0:
		return p.Y - q.Y
	default:
		return q.Y - p.Y
	}
}
