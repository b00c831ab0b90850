package ed25519

import (
	"bytes"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
)

// FuzzReduce checks Reduce against big.Int arithmetic for arbitrary 64-byte
// inputs. Other lengths must fail without panicking.
func FuzzReduce(f *testing.F) {
	f.Add(make([]byte, 64))
	f.Add(bytes.Repeat([]byte{0xff}, 64))
	f.Add(bytes.Repeat([]byte{0x80}, 64))
	f.Add([]byte{0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		got, err := Reduce(data)
		if len(data) != 64 {
			if err == nil {
				t.Fatalf("Reduce accepted %d bytes", len(data))
			}
			return
		}
		if err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		want := bigToLE32(new(big.Int).Mod(leToBig(data), orderL))
		if !bytes.Equal(got, want) {
			t.Fatalf("Reduce(%x) = %x, want %x", data, got, want)
		}
	})
}

// FuzzMultiplyAndAdd checks a*b + c mod L for inputs below 2^253.
func FuzzMultiplyAndAdd(f *testing.F) {
	f.Add(make([]byte, 96))
	f.Add(bytes.Repeat([]byte{0xff}, 96))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 96 {
			return
		}
		a := append([]byte{}, data[:32]...)
		b := append([]byte{}, data[32:64]...)
		c := append([]byte{}, data[64:]...)
		a[31] &= 0x1f
		b[31] &= 0x1f
		c[31] &= 0x1f

		got, err := MultiplyAndAdd(a, b, c)
		if err != nil {
			t.Fatalf("MultiplyAndAdd: %v", err)
		}
		want := new(big.Int).Mul(leToBig(a), leToBig(b))
		want.Add(want, leToBig(c))
		want.Mod(want, orderL)
		if !bytes.Equal(got, bigToLE32(want)) {
			t.Fatalf("MultiplyAndAdd mismatch for %x", data)
		}
	})
}

// FuzzDecodeGroupElement compares point decoding with the reference
// implementation and checks that accepted points re-encode consistently.
func FuzzDecodeGroupElement(f *testing.F) {
	f.Add(basePointEncoding[:])
	f.Add(make([]byte, 32))
	f.Add(bytes.Repeat([]byte{0xff}, 32))

	f.Fuzz(func(t *testing.T, data []byte) {
		g, err := DecodeGroupElement(data)
		if len(data) != 32 {
			if err == nil {
				t.Fatalf("decoded %d bytes", len(data))
			}
			return
		}
		ref, refErr := new(edwards25519.Point).SetBytes(data)
		if (err == nil) != (refErr == nil) {
			t.Fatalf("%x: err = %v, reference err = %v", data, err, refErr)
		}
		if err != nil {
			return
		}
		if !g.SatisfiesCurveEquation() {
			t.Fatalf("%x decoded off the curve", data)
		}
		enc, err := g.Encode()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(enc[:], ref.Bytes()) {
			t.Fatalf("%x: encoded %x, reference %x", data, enc, ref.Bytes())
		}
	})
}
