package ledgrid

// Group is a transform and visibility node, not itself a pixel source. It
// positions, scales, and shows or hides an ordered collection of children.
// Children composite in insertion order, so later children draw on top;
// there is no separate z-index.
//
// Scale is a positive integer applied by nearest-neighbor replication: a
// child pixel at local (cx, cy) covers parent-relative
// (cx*Scale, cy*Scale) through (cx*Scale+Scale-1, cy*Scale+Scale-1).
// A group's own X and Y are expressed in its parent's coordinate space;
// its Scale applies only below it.
type Group struct {
	X, Y   int
	Scale  int
	Hidden bool

	children []Drawable
	par      *Group
}

// NewGroup creates an empty group at the origin with scale 1.
func NewGroup() *Group {
	return &Group{Scale: 1}
}

// Append adds child as the topmost member of the group.
// If child already has a parent it is detached from that parent first, so
// a drawable is in at most one group at a time. Panics if child is nil or
// if adding it would create a cycle.
func (g *Group) Append(child Drawable) {
	g.Insert(len(g.children), child)
}

// Insert adds child at the given index in draw order.
// Same reparenting and cycle behavior as Append. Panics if index is out of
// range.
func (g *Group) Insert(index int, child Drawable) {
	if child == nil {
		panic("ledgrid: cannot add nil child")
	}
	if isAncestor(child, g) {
		panic("ledgrid: adding child would create a cycle")
	}
	if index < 0 || index > len(g.children) {
		panic("ledgrid: child index out of range")
	}
	if p := child.parent(); p != nil {
		p.removeByPtr(child)
		// Moving a child within the same group shifts positions down.
		if index > len(g.children) {
			index = len(g.children)
		}
	}
	child.setParent(g)
	g.children = append(g.children, nil)
	copy(g.children[index+1:], g.children[index:])
	g.children[index] = child
}

// Remove detaches child from the group. Removing a drawable that is not a
// member is a no-op.
func (g *Group) Remove(child Drawable) {
	if child == nil || child.parent() != g {
		return
	}
	g.removeByPtr(child)
	child.setParent(nil)
}

// Pop removes and returns the child at the given index. Panics if index is
// out of range.
func (g *Group) Pop(index int) Drawable {
	if index < 0 || index >= len(g.children) {
		panic("ledgrid: child index out of range")
	}
	child := g.children[index]
	copy(g.children[index:], g.children[index+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
	child.setParent(nil)
	return child
}

// RemoveAll detaches every child from the group.
func (g *Group) RemoveAll() {
	for _, child := range g.children {
		child.setParent(nil)
	}
	g.children = g.children[:0]
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// At returns the child at the given index. Panics if index is out of range.
func (g *Group) At(index int) Drawable {
	if index < 0 || index >= len(g.children) {
		panic("ledgrid: child index out of range")
	}
	return g.children[index]
}

// Index returns the position of child in draw order, or -1 if it is not a
// member.
func (g *Group) Index(child Drawable) int {
	for i, c := range g.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (g *Group) parent() *Group     { return g.par }
func (g *Group) setParent(p *Group) { g.par = p }

// removeByPtr removes child from g.children without clearing its parent.
// Uses copy+nil to avoid retaining a dangling reference in the backing
// array.
func (g *Group) removeByPtr(child Drawable) {
	for i, c := range g.children {
		if c == child {
			copy(g.children[i:], g.children[i+1:])
			g.children[len(g.children)-1] = nil
			g.children = g.children[:len(g.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or one of node's ancestors.
func isAncestor(candidate Drawable, node *Group) bool {
	for p := node; p != nil; p = p.par {
		if Drawable(p) == candidate {
			return true
		}
	}
	return false
}

func (g *Group) draw(disp *Display, offsetX, offsetY, scale int) {
	if g.Hidden {
		return
	}
	gx := offsetX + g.X*scale
	gy := offsetY + g.Y*scale
	gscale := scale * g.Scale
	for _, child := range g.children {
		child.draw(disp, gx, gy, gscale)
	}
}
