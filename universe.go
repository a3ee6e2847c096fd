package hashlife

// Universe is the single public entry point of the engine (§6): a
// hash-consed quadtree root plus a generation counter. All mutators
// (SetCell, Expand, Evolve) require exclusive access; GetCell requires at
// least a shared view. The engine itself performs no locking (§5) — an
// embedder sharing a Universe across goroutines must wrap it in a mutex.
type Universe struct {
	table      *NodeTable
	root       Node
	generation uint64
}

// New constructs an empty universe with a level-3 empty root and generation
// counter 0 (§4.2, §6).
func New() *Universe {
	t := NewNodeTable()
	return &Universe{
		table: t,
		root:  t.EmptyTree(3),
	}
}

// Generation returns the number of Evolve calls made so far.
func (u *Universe) Generation() uint64 {
	return u.generation
}

// Root returns the universe's current root handle, for callers (renderer,
// tests) that want to reason about tree structure directly.
func (u *Universe) Root() Node {
	return u.root
}

// Stats is a snapshot of the universe's externally observable state, used
// by the CLI and by pkg/hlmetrics.
type Stats struct {
	Generation    uint64
	RootLevel     Level
	Population    uint32
	NodeTableSize int
}

func (u *Universe) Stats() Stats {
	return Stats{
		Generation:    u.generation,
		RootLevel:     u.root.Level(),
		Population:    u.root.Population(),
		NodeTableSize: u.table.Size(),
	}
}

// GetCell returns the cell at pos (§4.3). Positions outside the current
// root's bounds read back as Dead, by convention — they are simply beyond
// anything ever Set, so they cannot be Alive.
func (u *Universe) GetCell(pos Position) Cell {
	if !u.root.Level().InBounds(pos) {
		return Dead
	}
	return getTreeCell(u.root, pos)
}

func getTreeCell(n Node, pos Position) Cell {
	if n.isLeaf() {
		return n.(*Leaf).Cell
	}
	lvl := n.Level()
	q := pos.Quadrant()
	switch q {
	case NorthWest:
		return getTreeCell(n.NW(), pos.RelativeTo(lvl.QuadrantCenter(NorthWest)))
	case NorthEast:
		return getTreeCell(n.NE(), pos.RelativeTo(lvl.QuadrantCenter(NorthEast)))
	case SouthWest:
		return getTreeCell(n.SW(), pos.RelativeTo(lvl.QuadrantCenter(SouthWest)))
	default:
		return getTreeCell(n.SE(), pos.RelativeTo(lvl.QuadrantCenter(SouthEast)))
	}
}

// SetCell sets the cell at pos, growing the universe first if necessary so
// pos falls in bounds, then path-copying from root to the target leaf,
// re-interning every rewritten node (§4.3). Siblings along the path keep
// their existing Handles.
func (u *Universe) SetCell(pos Position, cell Cell) {
	for !u.root.Level().InBounds(pos) {
		u.Expand()
	}
	u.root = u.setTreeCell(u.root, pos, cell)
}

func (u *Universe) setTreeCell(n Node, pos Position, cell Cell) Node {
	if n.isLeaf() {
		return u.table.InternLeaf(cell)
	}
	lvl := n.Level()
	switch pos.Quadrant() {
	case NorthWest:
		return u.table.InternInode(
			u.setTreeCell(n.NW(), pos.RelativeTo(lvl.QuadrantCenter(NorthWest)), cell),
			n.NE(), n.SW(), n.SE(),
		)
	case NorthEast:
		return u.table.InternInode(
			n.NW(),
			u.setTreeCell(n.NE(), pos.RelativeTo(lvl.QuadrantCenter(NorthEast)), cell),
			n.SW(), n.SE(),
		)
	case SouthWest:
		return u.table.InternInode(
			n.NW(), n.NE(),
			u.setTreeCell(n.SW(), pos.RelativeTo(lvl.QuadrantCenter(SouthWest)), cell),
			n.SE(),
		)
	default:
		return u.table.InternInode(
			n.NW(), n.NE(), n.SW(),
			u.setTreeCell(n.SE(), pos.RelativeTo(lvl.QuadrantCenter(SouthEast)), cell),
		)
	}
}

// Expand wraps the current root in a new, one-level-higher root so that the
// old root becomes the centered square of the new one, keeping the origin
// fixed and doubling the side length (§4.3).
func (u *Universe) Expand() {
	root := u.root
	border := u.table.EmptyTree(root.Level() - 1)
	u.root = u.table.InternInode(
		u.table.InternInode(border, border, border, root.NW()),
		u.table.InternInode(border, border, root.NE(), border),
		u.table.InternInode(border, root.SW(), border, border),
		u.table.InternInode(root.SE(), border, border, border),
	)
}

// Evolve advances the universe by one logical tick: 2^(rootLevel-2) raw
// Game-of-Life generations (§4.4, §6). It first pads the universe (root
// level >= 3, and each quadrant's outer corner balanced against its
// innermost grandchild) so the recursive evolution cannot leak outside the
// centered region, then replaces the root with its evolved center.
func (u *Universe) Evolve() {
	for !u.isPadded() {
		u.Expand()
	}
	u.root = u.evolveTree(u.root)
	u.generation++
}

func (u *Universe) isPadded() bool {
	root := u.root
	if root.Level() < 3 {
		return false
	}
	return root.NW().Population() == root.NW().SE().SE().Population() &&
		root.NE().Population() == root.NE().SW().SW().Population() &&
		root.SW().Population() == root.SW().NE().NE().Population() &&
		root.SE().Population() == root.SE().NW().NW().Population()
}
