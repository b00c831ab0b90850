package ed25519

import (
	"encoding/hex"
	"hash"
	"math/big"
	"math/rand/v2"
	"testing"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// fieldPrime is 2^255 - 19.
var fieldPrime = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

func newTestRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x6e656d, uint64(len(t.Name()))))
}

func randomBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Uint32())
	}
	return b
}

// randomFieldBytes returns a 255-bit little-endian value.
func randomFieldBytes(r *rand.Rand) []byte {
	b := randomBytes(r, 32)
	b[31] &= 0x7f
	return b
}

func randomFieldElement(t testing.TB, r *rand.Rand) FieldElement {
	t.Helper()
	f, err := DecodeFieldElement(randomFieldBytes(r))
	if err != nil {
		t.Fatalf("DecodeFieldElement: %v", err)
	}
	return f
}

// randomScalar returns a uniformly reduced scalar below L.
func randomScalar(t testing.TB, r *rand.Rand) []byte {
	t.Helper()
	s, err := Reduce(randomBytes(r, 64))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	return s
}

// randomPoint returns k*B for a random k, both as a P3 element and as the
// reference implementation's point.
func randomPoint(t testing.TB, r *rand.Rand) (*GroupElement, *edwards25519.Point) {
	t.Helper()
	ref := new(edwards25519.Point).ScalarBaseMult(refScalar(t, randomScalar(t, r)))
	p, err := DecodeGroupElement(ref.Bytes())
	if err != nil {
		t.Fatalf("DecodeGroupElement: %v", err)
	}
	return p, ref
}

func refScalar(t testing.TB, b []byte) *edwards25519.Scalar {
	t.Helper()
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		t.Fatalf("SetCanonicalBytes(%x): %v", b, err)
	}
	return s
}

func refField(t testing.TB, f FieldElement) *field.Element {
	t.Helper()
	enc := f.Encode()
	e, err := new(field.Element).SetBytes(enc[:])
	if err != nil {
		t.Fatalf("field.SetBytes: %v", err)
	}
	return e
}

// leToBig interprets b as a little-endian integer.
func leToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

// bigToLE32 writes v as 32 little-endian bytes.
func bigToLE32(v *big.Int) []byte {
	be := v.FillBytes(make([]byte, 32))
	out := make([]byte, 32)
	for i := range be {
		out[31-i] = be[i]
	}
	return out
}

func fieldToBig(f FieldElement) *big.Int {
	enc := f.Encode()
	return leToBig(enc[:])
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustEncode(t testing.TB, g *GroupElement) [32]byte {
	t.Helper()
	enc, err := g.Encode()
	if err != nil {
		t.Fatalf("Encode(%v): %v", g.Representation(), err)
	}
	return enc
}

func toP3(t testing.TB, g *GroupElement) *GroupElement {
	t.Helper()
	p3, err := g.ToP3()
	if err != nil {
		t.Fatalf("ToP3(%v): %v", g.Representation(), err)
	}
	return p3
}

// addPoints returns p + q in P3 for P3 inputs.
func addPoints(t testing.TB, p, q *GroupElement) *GroupElement {
	t.Helper()
	sum, err := p.Add(mustCached(t, q))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return toP3(t, sum)
}

// subPoints returns p - q in P3 for P3 inputs.
func subPoints(t testing.TB, p, q *GroupElement) *GroupElement {
	t.Helper()
	diff, err := p.Sub(mustCached(t, q))
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	return toP3(t, diff)
}

func mustCached(t testing.TB, g *GroupElement) *GroupElement {
	t.Helper()
	c, err := g.ToCached()
	if err != nil {
		t.Fatalf("ToCached: %v", err)
	}
	return c
}

// testKeyPair derives the clamped secret scalar, nonce prefix and public
// point the way Ed25519 does, with a configurable hash.
type testKeyPair struct {
	scalar []byte
	prefix []byte
	public [32]byte
	point  *GroupElement
}

func deriveTestKey(t testing.TB, newHash func() hash.Hash, seed []byte) testKeyPair {
	t.Helper()
	h := newHash()
	h.Write(seed)
	digest := h.Sum(nil)

	s := append([]byte{}, digest[:32]...)
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64

	A, err := BasePoint().ScalarMultiply(s)
	if err != nil {
		t.Fatalf("ScalarMultiply: %v", err)
	}
	return testKeyPair{scalar: s, prefix: digest[32:], public: mustEncode(t, A), point: A}
}

func hashToScalar(t testing.TB, newHash func() hash.Hash, parts ...[]byte) []byte {
	t.Helper()
	h := newHash()
	for _, p := range parts {
		h.Write(p)
	}
	k, err := Reduce(h.Sum(nil))
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}
	return k
}

// testSign produces R || S using only this package's primitives.
func testSign(t testing.TB, newHash func() hash.Hash, key testKeyPair, msg []byte) []byte {
	t.Helper()
	r := hashToScalar(t, newHash, key.prefix, msg)
	R, err := BasePoint().ScalarMultiply(r)
	if err != nil {
		t.Fatalf("ScalarMultiply: %v", err)
	}
	rEnc := mustEncode(t, R)
	k := hashToScalar(t, newHash, rEnc[:], key.public[:], msg)
	S, err := MultiplyAndAdd(k, key.scalar, r)
	if err != nil {
		t.Fatalf("MultiplyAndAdd: %v", err)
	}
	return append(rEnc[:], S...)
}

// testVerify checks R || S against the public key using only this
// package's primitives.
func testVerify(t testing.TB, newHash func() hash.Hash, public []byte, msg, sig []byte) bool {
	t.Helper()
	if len(sig) != 64 {
		return false
	}
	A, err := DecodeGroupElement(public)
	if err != nil {
		return false
	}
	k := hashToScalar(t, newHash, sig[:32], public, msg)
	ok, err := CheckSignatureEquation(A, sig[:32], sig[32:], k)
	if err != nil {
		t.Fatalf("CheckSignatureEquation: %v", err)
	}
	return ok
}
