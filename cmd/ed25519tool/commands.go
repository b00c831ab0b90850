package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/nem2030/nem2030/crypto/ed25519"
	"github.com/nem2030/nem2030/log"
)

// errCheckFailed reports that at least one signature equation did not hold.
var errCheckFailed = errors.New("signature check failed")

// env is what every command runs against.
type env struct {
	cfg    Config
	out    io.Writer
	points *ed25519.PrecomputedPointCache
	log    *log.Logger
}

type command struct {
	usage string
	nargs int // exact count, or the size of each repeated group if repeat
	rep   bool
	run   func(e *env, args [][]byte) error
}

var commands = map[string]command{
	"basemult": {usage: "basemult <scalar32>", nargs: 1, run: runBaseMult},
	"decode":   {usage: "decode <point32>", nargs: 1, run: runDecode},
	"reduce":   {usage: "reduce <scalar64>", nargs: 1, run: runReduce},
	"muladd":   {usage: "muladd <a32> <b32> <c32>", nargs: 3, run: runMulAdd},
	"pubkey":   {usage: "pubkey <seed32>", nargs: 1, run: runPubKey},
	"check":    {usage: "check <pubkey32> <sig64> <message> [...]", nargs: 3, rep: true, run: runCheck},
}

// dispatch decodes the hex arguments and runs the named command.
func dispatch(e *env, name string, raw []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if (!cmd.rep && len(raw) != cmd.nargs) || (cmd.rep && (len(raw) == 0 || len(raw)%cmd.nargs != 0)) {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	args := make([][]byte, len(raw))
	for i, s := range raw {
		b, err := hexutil.Decode(s)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = b
	}
	e.log.Debug("running command", "command", name, "args", len(args))
	return cmd.run(e, args)
}

func runBaseMult(e *env, args [][]byte) error {
	p, err := ed25519.BasePoint().ScalarMultiply(args[0])
	if err != nil {
		return err
	}
	return printPoint(e, p)
}

func runDecode(e *env, args [][]byte) error {
	p, err := ed25519.DecodeGroupElement(args[0])
	if err != nil {
		return err
	}
	if !p.SatisfiesCurveEquation() {
		return fmt.Errorf("%s: decoded point is off the curve", hexutil.Encode(args[0]))
	}
	if err := printPoint(e, p); err != nil {
		return err
	}
	fmt.Fprintln(e.out, p)
	return nil
}

func runReduce(e *env, args [][]byte) error {
	s, err := ed25519.Reduce(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, hexutil.Encode(s))
	return nil
}

func runMulAdd(e *env, args [][]byte) error {
	s, err := ed25519.MultiplyAndAdd(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, hexutil.Encode(s))
	return nil
}

// runPubKey derives the public key of a seed: hash, clamp, multiply by B.
func runPubKey(e *env, args [][]byte) error {
	seed := args[0]
	if len(seed) != 32 {
		return fmt.Errorf("%w: seed needs 32 bytes, got %d", ed25519.ErrInvalidLength, len(seed))
	}
	h := e.cfg.NewHash()()
	h.Write(seed)
	digest := h.Sum(nil)

	s := digest[:32]
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64

	p, err := ed25519.BasePoint().ScalarMultiply(s)
	if err != nil {
		return err
	}
	return printPoint(e, p)
}

// runCheck evaluates S*B - k*A == R for each (A, R||S, M) triple with
// k = H(R || A || M) mod L.
func runCheck(e *env, args [][]byte) error {
	failed := 0
	for i := 0; i < len(args); i += 3 {
		pub, sig, msg := args[i], args[i+1], args[i+2]
		ok, err := checkOne(e, pub, sig, msg)
		switch {
		case err != nil:
			fmt.Fprintf(e.out, "%d: error: %v\n", i/3, err)
			failed++
		case ok:
			fmt.Fprintf(e.out, "%d: ok\n", i/3)
		default:
			fmt.Fprintf(e.out, "%d: invalid\n", i/3)
			failed++
		}
	}
	e.log.Debug("checked signatures", "count", len(args)/3, "failed", failed, "cached", e.points.Len())
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errCheckFailed, failed, len(args)/3)
	}
	return nil
}

func checkOne(e *env, pub, sig, msg []byte) (bool, error) {
	if len(sig) != 64 {
		return false, fmt.Errorf("%w: signature needs 64 bytes, got %d", ed25519.ErrInvalidLength, len(sig))
	}
	A, err := e.points.Get(pub)
	if err != nil {
		return false, err
	}
	h := e.cfg.NewHash()()
	h.Write(sig[:32])
	h.Write(pub)
	h.Write(msg)
	k, err := ed25519.Reduce(h.Sum(nil))
	if err != nil {
		return false, err
	}
	return ed25519.CheckSignatureEquation(A, sig[:32], sig[32:], k)
}

func printPoint(e *env, p *ed25519.GroupElement) error {
	enc, err := p.Encode()
	if err != nil {
		return err
	}
	fmt.Fprintln(e.out, hexutil.Encode(enc[:]))
	return nil
}
