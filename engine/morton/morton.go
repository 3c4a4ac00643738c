// Package morton implements the Morton (Z-order curve) spatial index from
// spec 4.D/4.C: a 32-bit key interleaving two 16-bit axes, and a MortonTable
// keeping entities sorted by that key for range and nearest-neighbour scans.
package morton

// Key is a 32-bit Morton code: bits interleaved from two 16-bit lanes.
type Key uint32

// Encode interleaves x and y (each must fit in 16 bits) into a Morton key.
// Bit i of x occupies bit 2i of the result, bit i of y occupies bit 2i+1.
func Encode(x, y uint16) Key {
	return Key(partition(uint32(x)) | (partition(uint32(y)) << 1))
}

// partition spreads the low 16 bits of n so that each original bit i ends up
// at position 2i, leaving the odd bits zero.
func partition(n uint32) uint32 {
	// n = ----------------fedcba9876543210 : bits initially
	n = (n ^ (n << 8)) & 0x00ff00ff
	// n = --------fedcba98--------76543210
	n = (n ^ (n << 4)) & 0x0f0f0f0f
	// n = ----fedc----ba98----7654----3210
	n = (n ^ (n << 2)) & 0x33333333
	// n = --fe--dc--ba--98--76--54--32--10
	n = (n ^ (n << 1)) & 0x55555555
	// n = -f-e-d-c-b-a-9-8-7-6-5-4-3-2-1-0
	return n
}

// Decode reverses Encode, recovering the original (x, y) pair.
func Decode(k Key) (x, y uint16) {
	x = uint16(compact(uint32(k)))
	y = uint16(compact(uint32(k) >> 1))
	return
}

// compact is the inverse of partition: it gathers every other bit of n back
// into a contiguous low 16-bit value.
func compact(n uint32) uint32 {
	n &= 0x55555555
	n |= n >> 1
	n &= 0x33333333
	n |= n >> 2
	n &= 0x0f0f0f0f
	n |= n >> 4
	n &= 0x00ff00ff
	n |= n >> 8
	return n & 0x0000ffff
}
