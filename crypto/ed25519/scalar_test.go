package ed25519

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"filippo.io/edwards25519"
	"github.com/holiman/uint256"
)

var orderL = GroupOrder().ToBig()

func TestGroupOrderEncoding(t *testing.T) {
	want := mustHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	if got := bigToLE32(orderL); !bytes.Equal(got, want) {
		t.Fatalf("L = %x, want %x", got, want)
	}
}

func TestFoldCoefficients(t *testing.T) {
	// sum c_k 2^(21k) must be congruent to 2^252 mod L.
	sum := new(big.Int)
	for k, c := range foldCoefficients {
		term := new(big.Int).Lsh(big.NewInt(c), uint(21*k))
		sum.Add(sum, term)
	}
	twoTo252 := new(big.Int).Lsh(big.NewInt(1), 252)
	diff := new(big.Int).Sub(sum, twoTo252)
	if diff.Mod(diff, orderL).Sign() != 0 {
		t.Fatalf("fold coefficients do not encode 2^252 mod L")
	}
}

func TestReduceLength(t *testing.T) {
	for _, n := range []int{0, 32, 63, 65} {
		if _, err := Reduce(make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Reduce(%d bytes) err = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestMultiplyAndAddLength(t *testing.T) {
	ok := make([]byte, 32)
	short := make([]byte, 31)
	cases := [][3][]byte{
		{short, ok, ok},
		{ok, short, ok},
		{ok, ok, short},
		{ok, ok, make([]byte, 64)},
	}
	for i, c := range cases {
		if _, err := MultiplyAndAdd(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("case %d: err = %v, want ErrInvalidLength", i, err)
		}
	}
}

func TestReduceMatchesBig(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 200; i++ {
		in := randomBytes(r, 64)
		got, err := Reduce(in)
		if err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		want := bigToLE32(new(big.Int).Mod(leToBig(in), orderL))
		if !bytes.Equal(got, want) {
			t.Fatalf("Reduce(%x):\n got  %x\n want %x", in, got, want)
		}
		ref, err := edwards25519.NewScalar().SetUniformBytes(in)
		if err != nil {
			t.Fatalf("SetUniformBytes: %v", err)
		}
		if !bytes.Equal(got, ref.Bytes()) {
			t.Fatalf("Reduce disagrees with reference for %x", in)
		}
	}
}

func TestReduceEdgeCases(t *testing.T) {
	pad := func(b []byte) []byte { return append(append([]byte{}, b...), make([]byte, 64-len(b))...) }
	lBytes := bigToLE32(orderL)
	lMinus1 := bigToLE32(new(big.Int).Sub(orderL, big.NewInt(1)))
	allOnes := bytes.Repeat([]byte{0xff}, 64)
	maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 512), big.NewInt(1))

	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"zero", make([]byte, 64), make([]byte, 32)},
		{"L", pad(lBytes), make([]byte, 32)},
		{"L-1", pad(lMinus1), lMinus1},
		{"2^512-1", allOnes, bigToLE32(new(big.Int).Mod(maxVal, orderL))},
	}
	for _, tt := range tests {
		got, err := Reduce(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%s: got %x, want %x", tt.name, got, tt.want)
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 50; i++ {
		once, _ := Reduce(randomBytes(r, 64))
		twice, err := Reduce(append(append([]byte{}, once...), make([]byte, 32)...))
		if err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		if !bytes.Equal(once, twice) {
			t.Fatalf("reduce not a fixed point: %x -> %x", once, twice)
		}
	}
}

// random253 returns a 32-byte scalar below 2^253.
func random253(r interface{ Uint32() uint32 }) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(r.Uint32())
	}
	b[31] &= 0x1f
	return b
}

func leToUint256(b []byte) *uint256.Int {
	be := make([]byte, 32)
	for i := range b {
		be[31-i] = b[i]
	}
	return new(uint256.Int).SetBytes32(be)
}

func TestMultiplyAndAddMatchesUint256(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 200; i++ {
		a, b, c := random253(r), random253(r), random253(r)
		got, err := MultiplyAndAdd(a, b, c)
		if err != nil {
			t.Fatalf("MultiplyAndAdd: %v", err)
		}

		prod := new(uint256.Int).MulMod(leToUint256(a), leToUint256(b), groupOrder)
		cRed := new(uint256.Int).Mod(leToUint256(c), groupOrder)
		want := new(uint256.Int).AddMod(prod, cRed, groupOrder)
		wantLE := bigToLE32(want.ToBig())
		if !bytes.Equal(got, wantLE) {
			t.Fatalf("MultiplyAndAdd(%x, %x, %x):\n got  %x\n want %x", a, b, c, got, wantLE)
		}
	}
}

func TestMultiplyAndAddEdgeCases(t *testing.T) {
	ones := bytes.Repeat([]byte{0xff}, 32)
	zero := make([]byte, 32)
	lMinus1 := bigToLE32(new(big.Int).Sub(orderL, big.NewInt(1)))

	tests := []struct {
		name    string
		a, b, c []byte
	}{
		{"all ones", ones, ones, ones},
		{"all ones product", ones, ones, zero},
		{"all ones addend", zero, ones, ones},
		{"L-1 squared plus L-1", lMinus1, lMinus1, lMinus1},
	}
	for _, tt := range tests {
		got, err := MultiplyAndAdd(tt.a, tt.b, tt.c)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		want := new(big.Int).Mul(leToBig(tt.a), leToBig(tt.b))
		want.Add(want, leToBig(tt.c)).Mod(want, orderL)
		if !bytes.Equal(got, bigToLE32(want)) {
			t.Errorf("%s: got %x, want %x", tt.name, got, bigToLE32(want))
		}
	}
}

func TestMultiplyAndAddMatchesReference(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 100; i++ {
		a, b, c := randomScalar(t, r), randomScalar(t, r), randomScalar(t, r)
		got, err := MultiplyAndAdd(a, b, c)
		if err != nil {
			t.Fatalf("MultiplyAndAdd: %v", err)
		}
		ref := edwards25519.NewScalar().MultiplyAdd(refScalar(t, a), refScalar(t, b), refScalar(t, c))
		if !bytes.Equal(got, ref.Bytes()) {
			t.Fatalf("MultiplyAndAdd disagrees with reference")
		}
	}
}

func TestMultiplyAndAddIdentities(t *testing.T) {
	r := newTestRand(t)
	zero := make([]byte, 32)
	one := make([]byte, 32)
	one[0] = 1
	for i := 0; i < 50; i++ {
		a, c := random253(r), random253(r)

		got, _ := MultiplyAndAdd(a, zero, c)
		want, _ := Reduce(append(append([]byte{}, c...), zero...))
		if !bytes.Equal(got, want) {
			t.Fatalf("a*0 + c != reduce(c)")
		}

		got, _ = MultiplyAndAdd(a, one, zero)
		want, _ = Reduce(append(append([]byte{}, a...), zero...))
		if !bytes.Equal(got, want) {
			t.Fatalf("a*1 + 0 != reduce(a)")
		}
	}
}

func TestIsCanonicalScalar(t *testing.T) {
	lMinus1 := bigToLE32(new(big.Int).Sub(orderL, big.NewInt(1)))
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"zero", make([]byte, 32), true},
		{"L-1", lMinus1, true},
		{"L", bigToLE32(orderL), false},
		{"L+1", bigToLE32(new(big.Int).Add(orderL, big.NewInt(1))), false},
		{"all ones", bytes.Repeat([]byte{0xff}, 32), false},
		{"short", make([]byte, 31), false},
		{"long", make([]byte, 33), false},
	}
	for _, tt := range tests {
		if got := IsCanonicalScalar(tt.in); got != tt.want {
			t.Errorf("%s: IsCanonicalScalar = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func BenchmarkReduce(b *testing.B) {
	r := newTestRand(b)
	in := randomBytes(r, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Reduce(in)
	}
}
