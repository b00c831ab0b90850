// Command ed25519tool exposes the Ed25519 arithmetic core on the command
// line. All byte arguments are 0x-prefixed hex.
//
// Usage:
//
//	ed25519tool [flags] <command> [args]
//
// Commands:
//
//	basemult <scalar32>                      print a*B
//	decode <point32>                         decode, check and re-encode a point
//	reduce <scalar64>                        print s mod L
//	muladd <a32> <b32> <c32>                 print a*b + c mod L
//	pubkey <seed32>                          print the public key of a seed
//	check <pubkey32> <sig64> <message> ...   check signature equations
//
// Flags:
//
//	-verbosity  Log level 0-5 (default: 3)
//	-logformat  Log format: text, json, color (default: text)
//	-hasher     Key derivation hash: sha512, keccak512 (default: sha512)
//	-cache      Decoded public keys kept by check (default: 1024)
//	-metrics    Print metrics to stderr on exit
//	-version    Print version and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nem2030/nem2030/crypto/ed25519"
	"github.com/nem2030/nem2030/log"
	"github.com/nem2030/nem2030/metrics"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the actual entry point, returning an exit code: 0 on success, 1
// when the command fails and 2 for usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, rest, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	formatter, err := log.FormatterByName(cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	log.SetDefault(log.NewFormatted(stderr, formatter, VerbosityToLogLevel(cfg.Verbosity)))
	logger := log.Default().Module("ed25519tool")

	if len(rest) == 0 {
		fmt.Fprintln(stderr, "Error: missing command")
		usage(stderr)
		return 2
	}

	e := &env{
		cfg:    cfg,
		out:    stdout,
		points: ed25519.NewPrecomputedPointCache(cfg.CacheSize),
		log:    logger,
	}
	err = dispatch(e, rest[0], rest[1:])

	if cfg.Metrics {
		if werr := metrics.WriteText(stderr, metrics.DefaultRegistry, "nem2030"); werr != nil {
			logger.Warn("writing metrics failed", "err", werr)
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCheckFailed):
		logger.Info("signature check failed", "err", err)
		return 1
	default:
		logger.Error("command failed", "command", rest[0], "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

// parseFlags parses CLI arguments into a Config. It returns the config, the
// positional arguments, whether the caller should exit immediately, and the
// exit code.
func parseFlags(args []string, stdout, stderr io.Writer) (Config, []string, bool, int) {
	cfg := DefaultConfig()
	fs := newFlagSet(&cfg)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr); fs.PrintDefaults() }

	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, nil, true, 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cfg, nil, true, 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "ed25519tool %s (commit %s)\n", version, commit)
		return cfg, nil, true, 0
	}

	return cfg, fs.Args(), false, 0
}

// newFlagSet binds all CLI flags to cfg. The FlagSet uses ContinueOnError
// so callers control the error handling behavior.
func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("ed25519tool", flag.ContinueOnError)
	fs.IntVar(&cfg.Verbosity, "verbosity", cfg.Verbosity, "log level 0-5 (0=silent, 5=trace)")
	fs.StringVar(&cfg.LogFormat, "logformat", cfg.LogFormat, "log format (text, json, color)")
	fs.StringVar(&cfg.Hasher, "hasher", cfg.Hasher, "key derivation hash (sha512, keccak512)")
	fs.IntVar(&cfg.CacheSize, "cache", cfg.CacheSize, "decoded public keys kept by check")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print metrics to stderr on exit")
	return fs
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: ed25519tool [flags] <command> [args]")
	fmt.Fprintln(w, "Commands:")
	for _, name := range []string{"basemult", "decode", "reduce", "muladd", "pubkey", "check"} {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}
