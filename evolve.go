package hashlife

import (
	"math/bits"

	"github.com/kestrelsim/hashlife/pkg/hlerr"
)

// neighborMask isolates the 8 neighbors of the center cell in a 4-wide
// row-major 3x3 window packed into the low 9 bits read from the 16-bit
// base-case field; the center bit (bit 5) is read separately and excluded,
// implementing B3/S23 (§4.5).
const neighborMask uint16 = 0b111_0101_0111

// evolveTree advances the center of node by 2^(level-2) generations,
// memoizing the result on the node itself (§4.4). node must have level >= 2.
func (u *Universe) evolveTree(node Node) Node {
	inode, ok := node.(*Inode)
	if !ok || inode.level < 2 {
		panic(hlerr.New(hlerr.CodeInvariant, "evolveTree requires an Inode of level >= 2"))
	}

	if result, ok := inode.Result(); ok {
		return result
	}

	var result Node
	if inode.level == 2 {
		result = u.manualEvolve(inode)
	} else {
		n00 := u.evolveTree(inode.NW())
		n01 := u.evolveTree(u.table.InternInode(inode.NW().NE(), inode.NE().NW(), inode.NW().SE(), inode.NE().SW()))
		n02 := u.evolveTree(inode.NE())
		n10 := u.evolveTree(u.table.InternInode(inode.NW().SW(), inode.NW().SE(), inode.SW().NW(), inode.SW().NE()))
		n11 := u.evolveTree(u.centeredSub(inode))
		n12 := u.evolveTree(u.table.InternInode(inode.NE().SW(), inode.NE().SE(), inode.SE().NW(), inode.SE().NE()))
		n20 := u.evolveTree(inode.SW())
		n21 := u.evolveTree(u.table.InternInode(inode.SW().NE(), inode.SE().NW(), inode.SW().SE(), inode.SE().SW()))
		n22 := u.evolveTree(inode.SE())

		nw := u.evolveTree(u.table.InternInode(n00, n01, n10, n11))
		ne := u.evolveTree(u.table.InternInode(n01, n02, n11, n12))
		sw := u.evolveTree(u.table.InternInode(n10, n11, n20, n21))
		se := u.evolveTree(u.table.InternInode(n11, n12, n21, n22))

		result = u.table.InternInode(nw, ne, sw, se)
	}

	inode.setResult(result)
	return result
}

// centeredHorizontal builds the centered level-(L-1) tile straddling the
// vertical seam between west and east, two level-L siblings.
func (u *Universe) centeredHorizontal(west, east Node) Node {
	return u.table.InternInode(
		west.NE().SE(), east.NW().SW(),
		west.SE().NE(), east.SW().NW(),
	)
}

// centeredVertical builds the centered tile straddling the horizontal seam
// between north and south, two level-L siblings. (§9 Open Question: fixed
// as north.sw.se, north.se.sw, south.nw.ne, south.ne.nw.)
func (u *Universe) centeredVertical(north, south Node) Node {
	return u.table.InternInode(
		north.SW().SE(), north.SE().SW(),
		south.NW().NE(), south.NE().NW(),
	)
}

// centeredSub builds the node centered within a single level-L node.
func (u *Universe) centeredSub(node Node) Node {
	return u.table.InternInode(
		node.NW().SE(), node.NE().SW(),
		node.SW().NE(), node.SE().NW(),
	)
}

// centeredSubSub builds the innermost, doubly-centered tile of a level-L
// node.
func (u *Universe) centeredSubSub(node Node) Node {
	return u.table.InternInode(
		node.NW().SE().SE(), node.NE().SW().SW(),
		node.SW().NE().NE(), node.SE().NW().NW(),
	)
}

// manualEvolve implements the §4.5 base-case kernel: node is a level-2
// Inode covering a 4x4 square. The square is packed into a 16-bit,
// row-major field (MSB = the NW-most cell) addressed in node's own local
// coordinate frame, then each of the four center cells is advanced by one
// generation.
func (u *Universe) manualEvolve(node *Inode) Node {
	var field uint16
	for y := node.Level().MinCoord(); y < node.Level().MaxCoord()+1; y++ {
		for x := node.Level().MinCoord(); x < node.Level().MaxCoord()+1; x++ {
			field = (field << 1) | uint16(getTreeCell(node, Position{X: x, Y: y}))
		}
	}

	return u.table.InternInode(
		u.oneGen(field>>5), // nw
		u.oneGen(field>>4), // ne
		u.oneGen(field>>1), // sw
		u.oneGen(field),    // se
	)
}

// oneGen advances a single center cell one generation given a 16-bit field
// right-shifted so the cell's 3x3 neighborhood sits in the low 9 bits with
// the center at bit 5 (§4.5).
func (u *Universe) oneGen(field uint16) Node {
	if field == 0 {
		return u.table.InternLeaf(Dead)
	}

	center := (field >> 5) & 1
	neighbors := bits.OnesCount16(field & neighborMask)

	if neighbors == 3 || (neighbors == 2 && center != 0) {
		return u.table.InternLeaf(Alive)
	}
	return u.table.InternLeaf(Dead)
}
