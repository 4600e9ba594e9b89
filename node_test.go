package dawgidx

import "testing"

func TestNodeLenLeafTerminal(t *testing.T) {
	n := &node{isTerminal: true}
	n.fix()
	if got := n.len(); got != 1 {
		t.Errorf("len() = %d, want 1", got)
	}
	if got := n.idOffset(); got != 0 {
		t.Errorf("idOffset() = %d, want 0", got)
	}
}

func TestNodeLenLeafNonTerminal(t *testing.T) {
	n := &node{isTerminal: false}
	n.fix()
	if got := n.len(); got != 0 {
		t.Errorf("len() = %d, want 0", got)
	}
}

func TestNodeLenCountsChildAndSibling(t *testing.T) {
	// c1 -- sibling --> c2, both terminal leaves
	c2 := &node{label: 'b', isTerminal: true}
	c2.fix()
	c1 := &node{label: 'a', isTerminal: true, sibling: c2}
	c1.fix()

	parent := &node{isTerminal: false, child: c1}
	parent.fix()

	if got := parent.len(); got != 2 {
		t.Errorf("len() = %d, want 2", got)
	}
	if got := c1.idOffset(); got != c2.len() {
		t.Errorf("idOffset() = %d, want %d", got, c2.len())
	}
}
