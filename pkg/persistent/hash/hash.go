// Package hash contains hash functions for combining the hashes of the
// elements of persistent data structures.
package hash

// DJBInit is the initial value of a DJB hash.
const DJBInit uint32 = 5381

// DJBCombine adds h to the accumulated hash acc.
func DJBCombine(acc, h uint32) uint32 {
	return mul33(acc) + h
}

// DJB combines the given hashes in order, starting from DJBInit.
func DJB(hs ...uint32) uint32 {
	acc := DJBInit
	for _, h := range hs {
		acc = DJBCombine(acc, h)
	}
	return acc
}

func UInt32(u uint32) uint32 {
	return u
}

func UInt64(u uint64) uint32 {
	return mul33(uint32(u>>32)) + uint32(u&0xffffffff)
}

// Int hashes an int of either 32 or 64 bits.
func Int(i int) uint32 {
	return UInt64(uint64(i))
}

func String(s string) uint32 {
	h := DJBInit
	for i := 0; i < len(s); i++ {
		h = DJBCombine(h, uint32(s[i]))
	}
	return h
}

func mul33(u uint32) uint32 {
	return u<<5 + u
}
