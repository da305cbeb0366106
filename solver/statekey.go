package solver

import (
	"encoding/binary"
)

// A StateKey is the canonical identity of a candidate set: the
// ascending answer indices, delta-encoded as uvarints and stored in a
// string. Two histories that leave the same answers alive produce the
// same key, which is what makes transposition and sub-tree reuse work.
// Keys are comparable and usable as map keys.
type StateKey string

// KeyOf canonicalizes a candidate set. The input must be ascending,
// which is how the filter and the partitioner produce sets.
func KeyOf(set []int) StateKey {
	buf := make([]byte, 0, len(set)+8)
	prev := 0
	for _, idx := range set {
		buf = binary.AppendUvarint(buf, uint64(idx-prev))
		prev = idx
	}
	return StateKey(buf)
}

// Indices decodes the key back into the ascending candidate set.
func (k StateKey) Indices() []int {
	set := make([]int, 0, len(k))
	raw := []byte(k)
	prev := 0
	for len(raw) > 0 {
		d, n := binary.Uvarint(raw)
		raw = raw[n:]
		prev += int(d)
		set = append(set, prev)
	}
	return set
}
