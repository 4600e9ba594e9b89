package dawgidx

import "testing"

func TestDaNodeTypeSelection(t *testing.T) {
	cases := []struct {
		idOffset uint32
		wantType uint8
	}{
		{0, 0},
		{0xFF, 0},
		{0x100, 1},
		{0xFFFF, 1},
		{0x10000, 2},
		{0xFFFFFF, 2},
		{0x1000000, 3},
	}
	for _, c := range cases {
		n := &node{siblingTotal: c.idOffset}
		d := newDaNode(0, n)
		if d.typ != c.wantType {
			t.Errorf("newDaNode with idOffset=%#x: typ = %d, want %d", c.idOffset, d.typ, c.wantType)
		}
	}
}

func TestDaNodeTryAddChildCapacity(t *testing.T) {
	d0 := daNode{typ: 0}
	if !d0.tryAddChild('a') {
		t.Fatalf("type-0 node rejected first inline child")
	}
	if !d0.tryAddChild('b') {
		t.Fatalf("type-0 node rejected second inline child")
	}
	if d0.tryAddChild('c') {
		t.Errorf("type-0 node accepted a third inline child")
	}

	d1 := daNode{typ: 1}
	if !d1.tryAddChild('a') {
		t.Fatalf("type-1 node rejected first inline child")
	}
	if d1.tryAddChild('b') {
		t.Errorf("type-1 node accepted a second inline child")
	}

	d2 := daNode{typ: 2}
	if d2.tryAddChild('a') {
		t.Errorf("type-2 node accepted an inline child")
	}

	d3 := daNode{typ: 3}
	if d3.tryAddChild('a') {
		t.Errorf("type-3 node accepted an inline child")
	}
}

func TestMaskPacksAndIsolatesFields(t *testing.T) {
	w := mask(0x1FF, 0, 29) | mask(2, 29, 2) | mask(1, 31, 1) | mask(0xAB, 32, 8)
	if got := baseOfWord(w); got != 0x1FF {
		t.Errorf("baseOfWord = %#x, want 0x1FF", got)
	}
	if got := typeOfWord(w); got != 2 {
		t.Errorf("typeOfWord = %d, want 2", got)
	}
	if !isTerminalWord(w) {
		t.Errorf("isTerminalWord = false, want true")
	}
	if got := chckOfWord(w); got != 0xAB {
		t.Errorf("chckOfWord = %#x, want 0xAB", got)
	}
}

func TestBuildSingleWord(t *testing.T) {
	b := NewDawgBuilder()
	if err := b.Insert([]byte("a")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	trie := NewDoubleArrayBuilder().Build(b.Finish())

	if got := trie.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
	if !trie.Contains([]byte("a")) {
		t.Errorf("Contains(%q) = false, want true", "a")
	}
	if trie.Contains([]byte("b")) {
		t.Errorf("Contains(%q) = true, want false", "b")
	}
}
