package decimal

import (
	"encoding/binary"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It bridges 96-bit coefficients and arbitrary-precision integers.
type bint big.Int

// setBuf12 sets z to the 96-bit magnitude x.
func (z *bint) setBuf12(x buf12) {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], x[2])
	binary.BigEndian.PutUint32(b[4:8], x[1])
	binary.BigEndian.PutUint32(b[8:12], x[0])
	(*big.Int)(z).SetBytes(b[:])
}

// buf12 converts the absolute value of z to a 96-bit magnitude and reports
// whether it fits.
func (z *bint) buf12() (buf12, bool) {
	if (*big.Int)(z).BitLen() > 96 {
		return buf12{}, false
	}
	var b [12]byte
	(*big.Int)(z).FillBytes(b[:])
	return buf12{
		binary.BigEndian.Uint32(b[8:12]),
		binary.BigEndian.Uint32(b[4:8]),
		binary.BigEndian.Uint32(b[0:4]),
	}, true
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
