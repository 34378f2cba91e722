package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// hashSeed is fixed per process so equal nodes hash equal across calls.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the node, consistent with Equal.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Kind))
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(n.Tags))
	h.Write(b[:4])

	for i := range n.Segments {
		seg := &n.Segments[i]
		h.WriteString(seg.Text)
		h.WriteByte(0)
		binary.LittleEndian.PutUint32(b[:4], uint32(seg.Tags))
		h.Write(b[:4])
	}
	for _, k := range n.Keys {
		h.WriteString(k)
		h.WriteByte(0)
	}
	for _, v := range n.Values {
		binary.LittleEndian.PutUint64(b[:], v.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
