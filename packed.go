package dawgidx

// daNode describes the packed-array slot that will be allocated for one
// DAWG node: its own check byte, terminal flag and type, plus whatever
// child labels have been folded inline so far.
type daNode struct {
	index      int
	chck       byte
	isTerminal bool
	typ        uint8
	idOffset   uint32
	child1     byte
	child2     byte
}

// newDaNode derives a slot description for n, reached via parentBase+n.label.
// The type is fixed by n's own id_offset and never changes afterward, even
// as children get folded into the unused inline slots below.
func newDaNode(parentBase int, n *node) daNode {
	off := n.siblingTotal
	d := daNode{
		index:      parentBase + int(n.label),
		chck:       n.label,
		isTerminal: n.isTerminal,
		idOffset:   off,
	}
	switch {
	case off < 0x100:
		d.typ = 0
	case off < 0x10000:
		d.typ = 1
	case off < 0x1000000:
		d.typ = 2
	default:
		d.typ = 3
	}
	return d
}

// tryAddChild folds label into an unused inline slot, if this node's type
// still has room for one. Returns false if the fold can't be applied, in
// which case the caller must allocate a real base for the child instead.
func (d *daNode) tryAddChild(label byte) bool {
	switch d.typ {
	case 0:
		if d.child1 == 0 {
			d.child1 = label
			return true
		}
		if d.child2 == 0 {
			d.child2 = label
			return true
		}
	case 1:
		if d.child1 == 0 {
			d.child1 = label
			return true
		}
	}
	return false
}

// DoubleArrayBuilder packs a minimized Dawg into the two flat arrays
// (packed node words plus the overflow table) that back a Trie. It walks
// the Dawg recursively, memoizing the base allocated for any child group
// that more than one parent shares.
type DoubleArrayBuilder struct {
	alloc *allocator
	memo  map[*node]int
	nodes []uint64
	exts  []uint32
}

// NewDoubleArrayBuilder returns a builder ready to pack a single Dawg.
func NewDoubleArrayBuilder() *DoubleArrayBuilder {
	return &DoubleArrayBuilder{
		alloc: newAllocator(),
		memo:  make(map[*node]int),
	}
}

// Build packs d into a Trie.
func (b *DoubleArrayBuilder) Build(d *Dawg) *Trie {
	b.ensureLen(1)
	b.build(d.root, newDaNode(0, d.root))
	return &Trie{nodes: b.nodes, exts: b.exts}
}

func (b *DoubleArrayBuilder) ensureLen(n int) {
	if n <= len(b.nodes) {
		return
	}
	grown := make([]uint64, n)
	copy(grown, b.nodes)
	b.nodes = grown
}

// build emits da's slot and recurses into its children. While n has
// exactly one non-terminal child and da still has an unused inline slot,
// that child is folded into da instead of getting its own array entry.
func (b *DoubleArrayBuilder) build(n *node, da daNode) {
	var children []*node
	var memoKey *node
	var shared bool

	for {
		if n.child == nil {
			b.emit(da, 0)
			return
		}

		memoKey = n.child
		shared = n.child.shared
		if base, ok := b.memo[memoKey]; ok {
			b.emit(da, base)
			return
		}

		children = siblingsOf(n.child)
		reverseNodes(children) // smallest label first, see allocator.go

		if len(children) != 1 || children[0].isTerminal || !da.tryAddChild(children[0].label) {
			break
		}
		n = children[0]
	}

	labels := make([]byte, len(children))
	for i, c := range children {
		labels[i] = c.label
	}
	base := b.alloc.allocate(labels)
	if shared {
		b.memo[memoKey] = base
	}
	b.emit(da, base)
	for _, c := range children {
		b.build(c, newDaNode(base, c))
	}
}

func (b *DoubleArrayBuilder) emit(da daNode, base int) {
	b.ensureLen(da.index + 1)

	var word uint64
	word |= mask(uint64(base), 0, 29)
	word |= mask(uint64(da.typ), 29, 2)
	if da.isTerminal {
		word |= mask(1, 31, 1)
	}
	word |= mask(uint64(da.chck), 32, 8)

	switch da.typ {
	case 0:
		word |= mask(uint64(da.child1), 40, 8)
		word |= mask(uint64(da.child2), 48, 8)
		word |= mask(uint64(da.idOffset), 56, 8)
	case 1:
		word |= mask(uint64(da.child1), 40, 8)
		word |= mask(uint64(da.idOffset), 48, 16)
	case 2:
		word |= mask(uint64(da.idOffset), 40, 24)
	case 3:
		b.exts = append(b.exts, da.idOffset)
		word |= mask(uint64(len(b.exts)-1), 40, 24)
	}

	b.nodes[da.index] = word
}

func siblingsOf(n *node) []*node {
	var out []*node
	for c := n; c != nil; c = c.sibling {
		out = append(out, c)
	}
	return out
}

func reverseNodes(ns []*node) {
	for i, j := 0, len(ns)-1; i < j; i, j = i+1, j-1 {
		ns[i], ns[j] = ns[j], ns[i]
	}
}

func mask(x uint64, offset, size int) uint64 {
	return (x & (1<<uint(size) - 1)) << uint(offset)
}

// --- packed node bit layout, shared with the query side (cursor.go, trie.go) ---

func baseOfWord(w uint64) int      { return int(w & (1<<29 - 1)) }
func typeOfWord(w uint64) uint64   { return (w >> 29) & 0x3 }
func isTerminalWord(w uint64) bool { return (w>>31)&1 == 1 }
func chckOfWord(w uint64) byte     { return byte((w >> 32) & 0xFF) }

func idOffsetFromWord(w uint64, exts []uint32) uint32 {
	switch typeOfWord(w) {
	case 0:
		return uint32((w >> 56) & 0xFF)
	case 1:
		return uint32((w >> 48) & 0xFFFF)
	case 2:
		return uint32((w >> 40) & 0xFFFFFF)
	default:
		return exts[(w>>40)&0xFFFFFF]
	}
}
