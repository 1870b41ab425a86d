package decimal

import "math/bits"

// buf12 is a 96-bit unsigned magnitude stored as three 32-bit words,
// least significant word first.
type buf12 [3]uint32

// buf16 is a 128-bit working buffer used by the division digit loop.
type buf16 [4]uint32

// buf24 is a 192-bit working buffer wide enough to hold a full 96x96-bit
// product or a 96-bit magnitude rescaled by 10^28.
type buf24 [6]uint32

// pow10u32 is a cache of powers of 10, where pow10u32[x] = 10^x.
var pow10u32 = [...]uint32{
	1,             // 10^0
	10,            // 10^1
	100,           // 10^2
	1_000,         // 10^3
	10_000,        // 10^4
	100_000,       // 10^5
	1_000_000,     // 10^6
	10_000_000,    // 10^7
	100_000_000,   // 10^8
	1_000_000_000, // 10^9
}

// pow10u64 is a cache of powers of 10, where pow10u64[x] = 10^x.
var pow10u64 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// pow10w is a cache of 96-bit powers of 10, where pow10w[x] = 10^x.
// 10^28 is the largest power of 10 below 2^96.
var pow10w = func() (t [MaxScale + 1]buf12) {
	t[0] = buf12{1}
	for i := 1; i < len(t); i++ {
		mulWordsUint32(t[i][:], t[i-1][:], 10)
	}
	return t
}()

// cmpWords compares magnitudes a and b of equal length, most significant
// word first, and returns -1, 0 or +1.
func cmpWords(a, b []uint32) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// isZeroWords returns true if every word of a is zero.
func isZeroWords(a []uint32) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// bitLenWords returns the number of bits required to represent a.
func bitLenWords(a []uint32) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*32 + bits.Len32(a[i])
		}
	}
	return 0
}

// addWords calculates z = a + b and reports whether a carry propagated
// beyond the most significant word.
func addWords(z, a, b []uint32) (carry bool) {
	var c uint32
	for i := range z {
		z[i], c = bits.Add32(a[i], b[i], c)
	}
	return c != 0
}

// addWordsUint32 calculates z = z + v and reports whether a carry propagated
// beyond the most significant word.
func addWordsUint32(z []uint32, v uint32) (carry bool) {
	c := v
	for i := 0; i < len(z) && c != 0; i++ {
		z[i], c = bits.Add32(z[i], c, 0)
	}
	return c != 0
}

// subWords calculates z = a - b and reports whether a borrow was needed,
// that is whether a < b.
func subWords(z, a, b []uint32) (borrow bool) {
	var br uint32
	for i := range z {
		z[i], br = bits.Sub32(a[i], b[i], br)
	}
	return br != 0
}

// mulWordsUint32 calculates z = a * m and returns the overflow word that did
// not fit into len(z) words.
func mulWordsUint32(z, a []uint32, m uint32) (overflow uint32) {
	var carry uint32
	for i := range z {
		hi, lo := bits.Mul32(a[i], m)
		var c uint32
		z[i], c = bits.Add32(lo, carry, 0)
		carry = hi + c
	}
	return carry
}

// mulWords calculates the schoolbook product z = a * b.
// The length of z must be at least len(a) + len(b).
func mulWords(z, a, b []uint32) {
	for i := range z {
		z[i] = 0
	}
	for i := range a {
		if a[i] == 0 {
			continue
		}
		var carry uint32
		for j := range b {
			hi, lo := bits.Mul32(a[i], b[j])
			var c uint32
			lo, c = bits.Add32(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add32(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(b)] = carry
	}
}

// divWordsUint32 calculates z = a / d and returns a mod d.
// The divisor must not be zero.
func divWordsUint32(z, a []uint32, d uint32) (rem uint32) {
	for i := len(a) - 1; i >= 0; i-- {
		z[i], rem = bits.Div32(rem, a[i], d)
	}
	return rem
}

// shlWords calculates z = a << n for 0 <= n < 32 and returns the bits
// shifted out of the most significant word.
func shlWords(z, a []uint32, n uint) (out uint32) {
	if n == 0 {
		copy(z, a)
		return 0
	}
	for i := range a {
		w := a[i]
		z[i] = w<<n | out
		out = w >> (32 - n)
	}
	return out
}

// quoRemWords calculates q = n / m and r = n mod m using restoring binary
// long division. All slices must have the same length, the most significant
// bit of m must be clear, and m must not be zero.
func quoRemWords(q, r, n, m []uint32) {
	for i := range q {
		q[i] = 0
		r[i] = 0
	}
	// Single word divisor
	if bitLenWords(m) <= 32 {
		r[0] = divWordsUint32(q, n, m[0])
		return
	}
	// General case
	for i := bitLenWords(n) - 1; i >= 0; i-- {
		shlWords(r, r, 1)
		r[0] |= n[i/32] >> (i % 32) & 1
		if cmpWords(r, m) >= 0 {
			subWords(r, r, m)
			q[i/32] |= 1 << (i % 32)
		}
	}
}

// fsa (Fused Shift and Addition) calculates x * 10 + b and checks overflow.
func (x buf12) fsa(b byte) (buf12, bool) {
	var z buf12
	if mulWordsUint32(z[:], x[:], 10) != 0 {
		return x, false
	}
	if addWordsUint32(z[:], uint32(b)) {
		return x, false
	}
	return z, true
}

func (x buf12) isZero() bool {
	return x[0] == 0 && x[1] == 0 && x[2] == 0
}

func (x buf12) isOdd() bool {
	return x[0]&1 != 0
}

// wide converts x to a 192-bit working buffer.
func (x buf12) wide() buf24 {
	return buf24{x[0], x[1], x[2]}
}

// prec returns number of decimal digits in x.
func (x buf12) prec() int {
	if x.isZero() {
		return 0
	}
	// Estimate from the bit length, then adjust by one comparison.
	p := bitLenWords(x[:]) * 1233 >> 12
	if p < len(pow10w) && cmpWords(x[:], pow10w[p][:]) >= 0 {
		p++
	}
	return p
}

// ntz returns number of trailing zeros in the decimal representation of x.
func (x buf12) ntz() int {
	if x.isZero() {
		return 0
	}
	n := 0
	for {
		var z buf12
		if divWordsUint32(z[:], x[:], 10) != 0 {
			return n
		}
		x = z
		n++
	}
}

// rsh (Right Shift) calculates x / 10^shift, truncating the result,
// and returns the remainder digits as a sticky flag.
func (x buf12) rsh(shift int) (z buf12, inexact bool) {
	z = x
	for shift > 0 {
		s := min(shift, len(pow10u32)-1)
		if divWordsUint32(z[:], z[:], pow10u32[s]) != 0 {
			inexact = true
		}
		shift -= s
	}
	return z, inexact
}

func (x *buf24) fits96() bool {
	return x[3] == 0 && x[4] == 0 && x[5] == 0
}

func (x *buf24) lo96() buf12 {
	return buf12{x[0], x[1], x[2]}
}

// lsh (Left Shift) calculates x = x * 10^shift and reports whether the
// product fitted into 192 bits.
// A 96-bit magnitude can always be shifted by up to 28 digits.
func (x *buf24) lsh(shift int) bool {
	for shift > 0 {
		s := min(shift, len(pow10u32)-1)
		if mulWordsUint32(x[:], x[:], pow10u32[s]) != 0 {
			return false
		}
		shift -= s
	}
	return true
}
