package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"pqbrake/oprf"
	"pqbrake/oracle"
	"pqbrake/ring"
	"pqbrake/sampler"
	"pqbrake/seed"
)

func usage() {
	fmt.Println(`usage: oprfdemo <run|check> [options]

Subcommands:
  run      Execute one client/evaluator OPRF round and print the resulting seed.
           Flags:
             -secret <csv>   comma-separated signed secret coefficients (required)
             -seed   <string> deterministic PRNG seed (default: OS randomness)
             -toy            use toy parameters (q=127, N=4) instead of production defaults
             -raw-seed       use the clean-room raw-digest seed instead of the bit-exact quirk

  check    Run once, then run the §4.6 correctness oracle against the result.
           Flags: same as run.`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "run":
		runRun(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	default:
		usage()
	}
}

func parseSecret(csv string) (ring.IntPoly, error) {
	parts := strings.Split(csv, ",")
	p := ring.NewIntPoly(len(parts))
	for i, s := range parts {
		v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
		if !ok {
			return ring.IntPoly{}, fmt.Errorf("invalid secret coefficient %q", s)
		}
		p.Coeffs[i] = v
	}
	p.Normalize()
	return p, nil
}

func buildSource(seedStr string) sampler.Source {
	if seedStr == "" {
		return sampler.OSSource()
	}
	return sampler.Seeded([]byte(seedStr))
}

func setup(args []string) (*ring.Ctx, *oprf.ClientState, *oprf.EvaluatorState, sampler.Source, bool) {
	fs := flag.NewFlagSet("oprfdemo", flag.ExitOnError)
	secretFlag := fs.String("secret", "", "comma-separated signed secret coefficients")
	seedFlag := fs.String("seed", "", "deterministic PRNG seed (empty = OS randomness)")
	toy := fs.Bool("toy", false, "use toy parameters instead of production defaults")
	rawSeed := fs.Bool("raw-seed", false, "use the clean-room raw-digest seed variant")
	fs.Parse(args)

	if *secretFlag == "" {
		log.Fatalf("-secret is required")
	}
	secret, err := parseSecret(*secretFlag)
	if err != nil {
		log.Fatalf("secret: %v", err)
	}

	params := ring.DefaultParams()
	if *toy {
		params = ring.ToyParams()
	}
	ctx, err := ring.NewCtx(params)
	if err != nil {
		log.Fatalf("ring: %v", err)
	}

	src := buildSource(*seedFlag)

	client := oprf.NewClientState(secret)
	eval := oprf.NewEvaluatorState()
	return ctx, client, eval, src, *rawSeed
}

func runRun(args []string) {
	ctx, client, eval, src, rawSeed := setup(args)
	y, err := oprf.Run(ctx, client, eval, src, false, nil)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	printSeed(y, rawSeed)
}

func runCheck(args []string) {
	ctx, client, eval, src, rawSeed := setup(args)
	y, err := oprf.Run(ctx, client, eval, src, false, nil)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	printSeed(y, rawSeed)

	mismatch, err := oracle.Check(ctx, client, eval)
	if err != nil {
		log.Fatalf("check: %v", err)
	}
	if mismatch != nil {
		fmt.Printf("oracle: mismatch at %d coefficient(s): %v\n", len(mismatch.FailingIndices), mismatch.FailingIndices)
		os.Exit(2)
	}
	fmt.Println("oracle: pass")
	fmt.Printf("expected failure rate: %v\n", oracle.ExpectedFailureRate(ctx).FloatString(6))
}

func printSeed(y ring.IntPoly, raw bool) {
	var out [32]byte
	if raw {
		out = seed.ToSeedRaw(y)
	} else {
		out = seed.ToSeed(y)
	}
	fmt.Printf("seed: %x\n", out)
}
