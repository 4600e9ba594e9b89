package dawgidx

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/mmap"
)

// Trie is the packed, double-array form of a Dawg: a flat array of 64-bit
// node words plus an overflow table for id_offsets too wide to fit inline.
// It supports membership, id lookup and common-prefix search directly over
// the packed node words; Load decodes a saved file into those words first.
type Trie struct {
	nodes  []uint64
	exts   []uint32
	closer io.Closer // non-nil when loaded via Load, for mmap cleanup
}

// Len reports the number of words represented by t. It walks the path of
// maximal labels from the root, summing terminal flags and id_offsets
// along the way (see spec §4.6). Folded inline children never need their
// own step here: they are always non-terminal with id_offset 0, and they
// leave the owning word's base field pointing at the same real children a
// non-folded node's would, so skipping straight to the base+label scan
// gives the same total.
func (t *Trie) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	count := 0
	idx := 0
	for {
		w := t.nodes[idx]
		if isTerminalWord(w) {
			count++
		}
		count += int(idOffsetFromWord(w, t.exts))

		next, ok := t.highestChild(baseOfWord(w))
		if !ok {
			return count
		}
		idx = next
	}
}

// highestChild returns the array index of the real child reached by the
// largest label at base.
func (t *Trie) highestChild(base int) (int, bool) {
	for label := 0xFF; label >= 1; label-- {
		idx := base + label
		if idx < 0 || idx >= len(t.nodes) {
			continue
		}
		if chckOfWord(t.nodes[idx]) == byte(label) {
			return idx, true
		}
	}
	return -1, false
}

func (t *Trie) newCursor() *packedCursor {
	return &packedCursor{t: t, index: 0}
}

// SearchCommonPrefix returns every word in t that is a prefix of word, in
// the order they are matched (shortest first), each paired with its word
// id.
func (t *Trie) SearchCommonPrefix(word []byte) []Match {
	if len(t.nodes) == 0 {
		return nil
	}
	return commonPrefixMatches(word, t.newCursor())
}

// Contains reports whether word is exactly one of the words in t.
func (t *Trie) Contains(word []byte) bool {
	_, ok := t.GetID(word)
	return ok
}

// GetID returns the word id for word and true if word is in t.
func (t *Trie) GetID(word []byte) (uint32, bool) {
	for _, m := range t.SearchCommonPrefix(word) {
		if len(m.Prefix) == len(word) {
			return m.ID, true
		}
	}
	return 0, false
}

// EnumResult controls how Enumerate continues after visiting one node.
type EnumResult int

const (
	// Continue descends into the visited node's children.
	Continue EnumResult = iota
	// Skip does not descend into the visited node's children, but sibling
	// branches elsewhere in the trie are still visited.
	Skip
	// Stop ends the enumeration entirely.
	Stop
)

// EnumFn is called once per node visited by Enumerate, including the
// virtual nodes implied by folded inline children. When isTerminal is true,
// id is the word id of prefix, the same id SearchCommonPrefix reports.
type EnumFn func(id uint32, prefix []byte, isTerminal bool) EnumResult

// Enumerate walks every node of t in label order, depth first, calling fn
// once per node.
func (t *Trie) Enumerate(fn EnumFn) {
	if len(t.nodes) == 0 {
		return
	}
	t.enumerate(0, 0, nil, fn)
}

func (t *Trie) enumerate(index int, id uint32, prefix []byte, fn EnumFn) EnumResult {
	w := t.nodes[index]
	res := fn(id, prefix, isTerminalWord(w))
	if res != Continue {
		return res
	}
	return t.enumerateChildren(w, id, prefix, fn)
}

func (t *Trie) enumerateChildren(w uint64, id uint32, prefix []byte, fn EnumFn) EnumResult {
	if isTerminalWord(w) {
		id++
	}
	typ := typeOfWord(w)
	var inline []byte
	if typ == 0 || typ == 1 {
		if c1 := byte((w >> 40) & 0xFF); c1 != 0 {
			inline = append(inline, c1)
			if typ == 0 {
				if c2 := byte((w >> 48) & 0xFF); c2 != 0 {
					inline = append(inline, c2)
				}
			}
		}
	}
	return t.enumerateInline(w, inline, 0, id, prefix, fn)
}

// enumerateInline visits the remaining folded inline children of w (always
// non-terminal, id_offset 0 by construction), then falls through to the
// real base+label scan once the inline chain is exhausted.
func (t *Trie) enumerateInline(w uint64, inline []byte, i int, id uint32, prefix []byte, fn EnumFn) EnumResult {
	if i < len(inline) {
		next := append(append([]byte(nil), prefix...), inline[i])
		res := fn(id, next, false)
		if res != Continue {
			return res
		}
		return t.enumerateInline(w, inline, i+1, id, next, fn)
	}

	base := baseOfWord(w)
	for label := 1; label <= 0xFF; label++ {
		idx := base + label
		if idx < 0 || idx >= len(t.nodes) {
			continue
		}
		cw := t.nodes[idx]
		if chckOfWord(cw) != byte(label) {
			continue
		}
		childPrefix := append(append([]byte(nil), prefix...), byte(label))
		childID := id + idOffsetFromWord(cw, t.exts)
		if res := t.enumerate(idx, childID, childPrefix, fn); res == Stop {
			return Stop
		}
	}
	return Continue
}

// Dump writes one diagnostic line per occupied slot of t to w: index,
// base, type, terminal flag, check byte, id_offset and any inline children.
func (t *Trie) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, word := range t.nodes {
		if word == 0 {
			continue
		}
		typ := typeOfWord(word)
		base := baseOfWord(word)
		chck := chckOfWord(word)
		terminal := isTerminalWord(word)
		idOff := idOffsetFromWord(word, t.exts)
		c1 := byte((word >> 40) & 0xFF)
		c2 := byte((word >> 48) & 0xFF)

		switch typ {
		case 0:
			fmt.Fprintf(bw, "[%06x] base=%d type=%d terminal=%v chck=%#02x id_offset=%d inline=%#02x,%#02x\n",
				i, base, typ, terminal, chck, idOff, c1, c2)
		case 1:
			fmt.Fprintf(bw, "[%06x] base=%d type=%d terminal=%v chck=%#02x id_offset=%d inline=%#02x\n",
				i, base, typ, terminal, chck, idOff, c1)
		default:
			fmt.Fprintf(bw, "[%06x] base=%d type=%d terminal=%v chck=%#02x id_offset=%d\n",
				i, base, typ, terminal, chck, idOff)
		}
	}
	return bw.Flush()
}

// Save writes t to path in the packed file format: a little-endian header
// (node-array byte length, overflow-array byte length) followed by the raw
// node words and then the raw overflow words, all little-endian.
func (t *Trie) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Write(f)
}

// Write is the io.Writer-based half of Save.
func (t *Trie) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(len(t.nodes)*8))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(t.exts)*4))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	var buf [8]byte
	for _, n := range t.nodes {
		binary.LittleEndian.PutUint64(buf[:], n)
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}

	var ebuf [4]byte
	for _, e := range t.exts {
		binary.LittleEndian.PutUint32(ebuf[:], e)
		if _, err := bw.Write(ebuf[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Load memory-maps path read-only and decodes a Trie from it. The returned
// Trie's Close must be called when it is no longer needed, to release the
// mapping.
func Load(path string) (*Trie, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	t, err := loadFromReaderAt(r, r.Len())
	if err != nil {
		r.Close()
		return nil, err
	}
	t.closer = r
	return t, nil
}

func loadFromReaderAt(r io.ReaderAt, size int) (*Trie, error) {
	if size < 8 {
		return nil, fmt.Errorf("dawgidx: %w: file too short for header", ErrMalformed)
	}
	hdr := make([]byte, 8)
	if _, err := r.ReadAt(hdr, 0); err != nil {
		return nil, err
	}
	nodesLen := binary.LittleEndian.Uint32(hdr[0:4])
	extsLen := binary.LittleEndian.Uint32(hdr[4:8])
	if nodesLen%8 != 0 || extsLen%4 != 0 {
		return nil, fmt.Errorf("dawgidx: %w: lengths not aligned to element size", ErrMalformed)
	}
	want := int64(8) + int64(nodesLen) + int64(extsLen)
	if int64(size) < want {
		return nil, fmt.Errorf("dawgidx: %w: file shorter than its declared content", ErrMalformed)
	}

	nodes := make([]uint64, nodesLen/8)
	if nodesLen > 0 {
		buf := make([]byte, nodesLen)
		if _, err := r.ReadAt(buf, 8); err != nil && err != io.EOF {
			return nil, err
		}
		for i := range nodes {
			nodes[i] = binary.LittleEndian.Uint64(buf[i*8 : i*8+8])
		}
	}

	exts := make([]uint32, extsLen/4)
	if extsLen > 0 {
		buf := make([]byte, extsLen)
		if _, err := r.ReadAt(buf, 8+int64(nodesLen)); err != nil && err != io.EOF {
			return nil, err
		}
		for i := range exts {
			exts[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
		}
	}

	return &Trie{nodes: nodes, exts: exts}, nil
}

// Close releases the memory mapping acquired by Load. It is a no-op for a
// Trie built directly by DoubleArrayBuilder.
func (t *Trie) Close() error {
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}
