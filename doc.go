// Package dawgidx builds and queries a DAWG-compressed double-array trie.
//
// Construction happens in two stages. First, DawgBuilder consumes words in
// sorted order and hash-conses them into a minimized directed acyclic word
// graph (a Dawg): common suffixes collapse onto shared nodes, and each node
// carries enough subtree-size bookkeeping to act as a perfect hash over the
// words it accepts. Second, DoubleArrayBuilder packs that Dawg into a flat
// array of 64-bit words addressed by base+label, the representation a Trie
// actually queries against - no pointer chasing, and small dictionaries map
// onto a handful of cache lines.
//
// A couple of things fall out of this split that are worth keeping in
// mind. Building is entirely single-threaded and one-shot: there is no
// incremental insert into an already-packed Trie, and DawgBuilder itself
// requires its input sorted and free of the reserved 0x00 byte. Once
// packed, a Trie is read-only and safe for concurrent readers, including
// ones mapping the same file via Load.
package dawgidx
