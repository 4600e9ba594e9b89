package dawgidx

import "testing"

func TestAllocatorDisjointBasesDontCollide(t *testing.T) {
	a := newAllocator()
	b1 := a.allocate([]byte{'a', 'b', 'c'})
	b2 := a.allocate([]byte{'a', 'd'})

	seen := make(map[int]bool)
	for _, l := range []byte{'a', 'b', 'c'} {
		idx := b1 + int(l)
		if seen[idx] {
			t.Fatalf("slot %d double-booked within first allocation", idx)
		}
		seen[idx] = true
	}
	for _, l := range []byte{'a', 'd'} {
		idx := b2 + int(l)
		if seen[idx] {
			t.Fatalf("slot %d collides across allocations (base1=%d, base2=%d)", idx, b1, b2)
		}
		seen[idx] = true
	}
}

func TestAllocatorNeverReusesABase(t *testing.T) {
	a := newAllocator()
	used := make(map[int]bool)
	for i := 0; i < 200; i++ {
		base := a.allocate([]byte{byte(1 + i%5), byte(2 + i%5)})
		if used[base] {
			t.Fatalf("base %d handed out twice", base)
		}
		used[base] = true
	}
}

func TestAllocatorBaseAlwaysPositive(t *testing.T) {
	a := newAllocator()
	for i := 0; i < 50; i++ {
		base := a.allocate([]byte{0xFF, 0x01})
		if base <= 0 {
			t.Fatalf("allocate returned non-positive base %d", base)
		}
	}
}
