package hashlife

import "github.com/kestrelsim/hashlife/pkg/hlerr"

// inodeKey is the canonical key an Inode is stored under: its four
// children. result is deliberately excluded (§3 invariant 4) so filling the
// memoization cache never changes an Inode's identity.
type inodeKey struct {
	nw, ne, sw, se Node
}

// NodeTable is the hash-consing store of §4.1: it assigns a single,
// canonical Handle (a Node value) to every distinct Leaf and Inode value.
// Lookup and insertion are O(1) map operations. The table never removes
// entries (§1 Non-goals: no GC) and is not safe for concurrent use (§5).
type NodeTable struct {
	leaves     [2]*Leaf
	inodes     map[inodeKey]*Inode
	emptyCache map[Level]Node
}

// NewNodeTable builds an empty table, pre-interning the two possible Leaf
// values since there can only ever be one of each.
func NewNodeTable() *NodeTable {
	t := &NodeTable{
		inodes:     make(map[inodeKey]*Inode),
		emptyCache: make(map[Level]Node),
	}
	t.leaves[Dead] = &Leaf{Cell: Dead}
	t.leaves[Alive] = &Leaf{Cell: Alive}
	return t
}

// InternLeaf returns the canonical Leaf for the given cell value.
func (t *NodeTable) InternLeaf(c Cell) Node {
	return t.leaves[c]
}

// InternInode returns the canonical Inode for the given four children,
// creating it on first use. Repeated calls with the same four children
// (in the same order) return the identical Node value (§4.1 contract).
func (t *NodeTable) InternInode(nw, ne, sw, se Node) Node {
	lvl := nw.Level()
	if ne.Level() != lvl || sw.Level() != lvl || se.Level() != lvl {
		panic(hlerr.New(hlerr.CodeInvariant, "internInode called with children of differing levels"))
	}

	key := inodeKey{nw, ne, sw, se}
	if existing, ok := t.inodes[key]; ok {
		return existing
	}

	n := &Inode{
		level:      lvl + 1,
		population: nw.Population() + ne.Population() + sw.Population() + se.Population(),
		nw:         nw,
		ne:         ne,
		sw:         sw,
		se:         se,
	}
	t.inodes[key] = n
	return n
}

// EmptyTree returns the canonical all-dead tree at the given level (§4.2),
// building it bottom-up and caching each level it builds so repeated calls
// at the same level are O(1).
func (t *NodeTable) EmptyTree(level Level) Node {
	if level == LeafLevel {
		return t.InternLeaf(Dead)
	}
	if cached, ok := t.emptyCache[level]; ok {
		return cached
	}
	child := t.EmptyTree(level - 1)
	n := t.InternInode(child, child, child, child)
	t.emptyCache[level] = n
	return n
}

// Size returns the number of distinct nodes interned so far (2 leaves plus
// every distinct Inode), used by hlmetrics to report node-table growth.
func (t *NodeTable) Size() int {
	return len(t.inodes) + 2
}
