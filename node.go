package hashlife

import "github.com/kestrelsim/hashlife/pkg/hlerr"

// Node is the opaque handle type of §3: a reference to a canonical quadtree
// node held by a NodeTable. Two Node values are equal iff they denote
// structurally identical subtrees, because the table never creates two
// distinct nodes for the same (nw,ne,sw,se) tuple or the same Cell. Node
// values are themselves the Handle described by the spec — they are plain
// interface values (pointer + type tag) and are cheap to copy and compare.
type Node interface {
	isLeaf() bool
	Level() Level
	Population() uint32

	NW() Node
	NE() Node
	SW() Node
	SE() Node
}

// Leaf is a level-0 node: a single cell.
type Leaf struct {
	Cell Cell
}

func (l *Leaf) isLeaf() bool { return true }
func (l *Leaf) Level() Level { return LeafLevel }

func (l *Leaf) Population() uint32 {
	if l.Cell == Alive {
		return 1
	}
	return 0
}

func (l *Leaf) NW() Node { panic(hlerr.New(hlerr.CodeInvariant, "getChild called on a Leaf")) }
func (l *Leaf) NE() Node { panic(hlerr.New(hlerr.CodeInvariant, "getChild called on a Leaf")) }
func (l *Leaf) SW() Node { panic(hlerr.New(hlerr.CodeInvariant, "getChild called on a Leaf")) }
func (l *Leaf) SE() Node { panic(hlerr.New(hlerr.CodeInvariant, "getChild called on a Leaf")) }

// Inode is an internal node: four children one level smaller, a memoized
// population and a lazily-filled evolution result (§3). The result cache is
// the sole field mutated after construction; canonical identity (§3
// invariant 4) is defined on (nw,ne,sw,se) only, so mutating it never
// violates hash-consing.
type Inode struct {
	level          Level
	population     uint32
	nw, ne, sw, se Node

	result Node
}

func (n *Inode) isLeaf() bool       { return false }
func (n *Inode) Level() Level       { return n.level }
func (n *Inode) Population() uint32 { return n.population }
func (n *Inode) NW() Node           { return n.nw }
func (n *Inode) NE() Node           { return n.ne }
func (n *Inode) SW() Node           { return n.sw }
func (n *Inode) SE() Node           { return n.se }

// Result returns the memoized evolution of this node's center, if any has
// been computed yet (§3, §4.4).
func (n *Inode) Result() (Node, bool) {
	return n.result, n.result != nil
}

// setResult fills the memoization cache. Only ever called once per node by
// evolveTree; filling it twice with the same canonical value is harmless.
func (n *Inode) setResult(r Node) {
	n.result = r
}
