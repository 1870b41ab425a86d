package decimal

import (
	"encoding/binary"
)

// Layout of the flags word of the binary representation.
const (
	signMask   = 0x8000_0000
	scaleMask  = 0x00FF_0000
	scaleShift = 16
)

// Serialize returns the 16-byte binary representation of d.
// The first four bytes hold the little-endian flags word: the scale in bits
// 16 to 23 and the sign in bit 31. They are followed by the little-endian
// hi, lo and mid words of the coefficient.
// Also see method [Deserialize].
func (d Decimal) Serialize() [16]byte {
	var b [16]byte
	flags := uint32(d.scale) << scaleShift
	if d.neg {
		flags |= signMask
	}
	binary.LittleEndian.PutUint32(b[0:4], flags)
	binary.LittleEndian.PutUint32(b[4:8], d.hi)
	binary.LittleEndian.PutUint32(b[8:12], d.lo)
	binary.LittleEndian.PutUint32(b[12:16], d.mid)
	return b
}

// Deserialize converts a 16-byte binary representation produced by
// [Decimal.Serialize] to a decimal.
//
// Deserialize returns an error if:
//   - any bit of the flags word other than the sign and scale bits is set;
//   - the scale is greater than [MaxScale].
func Deserialize(b [16]byte) (Decimal, error) {
	flags := binary.LittleEndian.Uint32(b[0:4])
	if flags&^(signMask|scaleMask) != 0 {
		return Decimal{}, newErrorf("invalid flags %#08x", flags)
	}
	return FromParts(
		binary.LittleEndian.Uint32(b[8:12]),
		binary.LittleEndian.Uint32(b[12:16]),
		binary.LittleEndian.Uint32(b[4:8]),
		flags&signMask != 0,
		(flags&scaleMask)>>scaleShift,
	)
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// Also see method [Decimal.Serialize].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	b := d.Serialize()
	return b[:], nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// Also see method [Deserialize].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return newErrorf("invalid binary length %v, want 16", len(data))
	}
	var err error
	*d, err = Deserialize([16]byte(data))
	return err
}
