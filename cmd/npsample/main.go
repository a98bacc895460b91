// Command npsample draws random samples from the command line.
//
//	npsample --seed 42 random --size 3,4
//	npsample integers 0 10 --size 20 --dtype uint8
//	npsample draw normal 0 2 --size 5 --output normal.csv
//	npsample --bitgen mt19937 permutation 10
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/decred/slog"
	"github.com/nozzle/nprand"
	"github.com/nozzle/nprand/bounded"
	"github.com/nozzle/nprand/dtype"
	"github.com/nozzle/nprand/kernel"
	"github.com/nozzle/nprand/shape"
	"github.com/urfave/cli/v3"
)

var log = slog.Disabled

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree.  Samples are written to stdout unless
// --output names a file.
func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "npsample",
		Usage:  "Draw NumPy-compatible random samples",
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Bit generator seed",
				Value: nprand.DefaultConfig().Seed,
			},
			&cli.StringFlag{
				Name:  "bitgen",
				Usage: "Bit generator: pcg64dxsm or mt19937",
				Value: nprand.DefaultConfig().BitGenerator,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every call at trace level",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:   "random",
				Usage:  "Floats in [0, 1)",
				Flags:  append(outputFlags(), dtypeFlag("float64")),
				Action: randomAction,
			},
			{
				Name:      "integers",
				Usage:     "Integers in [LOW, HIGH)",
				ArgsUsage: "LOW HIGH",
				Flags: append(outputFlags(), dtypeFlag("int64"),
					&cli.BoolFlag{
						Name:  "endpoint",
						Usage: "Make HIGH inclusive",
					},
				),
				Action: integersAction,
			},
			{
				Name:      "draw",
				Usage:     "Samples from a named distribution",
				ArgsUsage: "FAMILY [PARAMS...]",
				Description: "Families: " + strings.Join(kernel.Names(), ", ") +
					".\nParameters are positional, in NumPy's order.",
				Flags: append(outputFlags(), dtypeFlag(""),
					&cli.StringFlag{
						Name:  "method",
						Usage: "standard_exponential method: zig or inv",
						Value: "zig",
					},
				),
				Action: drawAction,
			},
			{
				Name:      "permutation",
				Usage:     "A random ordering of 0..N-1",
				ArgsUsage: "N",
				Flags:     outputFlags(),
				Action:    permutationAction,
			},
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "size",
			Usage: `Output shape such as "5", "3,4" or "()"; empty for a scalar`,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the result to a CSV file",
		},
	}
}

func dtypeFlag(value string) cli.Flag {
	return &cli.StringFlag{
		Name:  "dtype",
		Usage: "Output element type",
		Value: value,
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	backend := slog.NewBackend(cmd.Root().ErrWriter)
	libLog := backend.Logger("RAND")
	log = backend.Logger("MAIN")
	if cmd.Bool("verbose") {
		libLog.SetLevel(slog.LevelTrace)
		log.SetLevel(slog.LevelDebug)
	} else {
		libLog.SetLevel(slog.LevelWarn)
		log.SetLevel(slog.LevelWarn)
	}
	nprand.UseLogger(libLog)
	return ctx, nil
}

// generator builds the Generator selected by the root flags.
func generator(cmd *cli.Command) (*nprand.Generator, error) {
	root := cmd.Root()
	cfg := nprand.DefaultConfig()
	cfg.BitGenerator = root.String("bitgen")
	cfg.Seed = root.Uint64("seed")

	log.Debugf("Using %s seeded with %d", cfg.BitGenerator, cfg.Seed)
	return nprand.NewFromConfig(cfg)
}

func sizeFlag(cmd *cli.Command) (shape.Size, error) {
	size, err := shape.Parse(cmd.String("size"))
	if err != nil {
		return shape.Size{}, fmt.Errorf("invalid --size: %w", err)
	}
	return size, nil
}

func randomAction(ctx context.Context, cmd *cli.Command) error {
	g, err := generator(cmd)
	if err != nil {
		return err
	}
	size, err := sizeFlag(cmd)
	if err != nil {
		return err
	}
	dt, err := dtype.Parse(cmd.String("dtype"))
	if err != nil {
		return err
	}
	s, err := g.Random(size, dt)
	if err != nil {
		return err
	}
	return emit(cmd, s)
}

// parseBound reads an integer bound, accepting uint64 values above int64.
func parseBound(s string) (bounded.Bound, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return bounded.Int(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return bounded.Bound{}, fmt.Errorf("invalid integer bound %q", s)
	}
	return bounded.Uint(v), nil
}

func integersAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("usage: npsample integers LOW HIGH")
	}
	low, err := parseBound(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	high, err := parseBound(cmd.Args().Get(1))
	if err != nil {
		return err
	}
	g, err := generator(cmd)
	if err != nil {
		return err
	}
	size, err := sizeFlag(cmd)
	if err != nil {
		return err
	}
	dt, err := dtype.Parse(cmd.String("dtype"))
	if err != nil {
		return err
	}
	s, err := g.IntegersBound(low, high, size, dt, cmd.Bool("endpoint"))
	if err != nil {
		return err
	}
	return emit(cmd, s)
}

func drawAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: npsample draw FAMILY [PARAMS...]")
	}
	name := cmd.Args().First()
	family, ok := kernel.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown family %q, expected one of %s",
			name, strings.Join(kernel.Names(), ", "))
	}

	params := make([]float64, 0, cmd.NArg()-1)
	for _, arg := range cmd.Args().Tail() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid parameter %q: %w", name, arg, err)
		}
		params = append(params, v)
	}

	dt := defaultDType(family)
	if s := cmd.String("dtype"); s != "" {
		var err error
		if dt, err = dtype.Parse(s); err != nil {
			return err
		}
	}

	g, err := generator(cmd)
	if err != nil {
		return err
	}
	size, err := sizeFlag(cmd)
	if err != nil {
		return err
	}

	var s nprand.Sample
	if family == kernel.StandardExponential || family == kernel.StandardExponentialInv {
		method := cmd.String("method")
		if family == kernel.StandardExponentialInv {
			method = "inv"
		}
		if len(params) != 0 {
			return fmt.Errorf("%s takes no parameters", name)
		}
		s, err = g.StandardExponential(size, dt, method)
	} else {
		s, err = g.Draw(family, size, dt, params...)
	}
	if err != nil {
		return err
	}
	return emit(cmd, s)
}

// defaultDType is float64 unless the family only produces integers.
func defaultDType(family kernel.Family) dtype.DType {
	dts := kernel.DTypes(family)
	if len(dts) == 1 {
		return dts[0]
	}
	return dtype.Float64
}

func permutationAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("usage: npsample permutation N")
	}
	n, err := strconv.Atoi(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("invalid N: %w", err)
	}
	g, err := generator(cmd)
	if err != nil {
		return err
	}
	p, err := g.PermutationN(n)
	if err != nil {
		return err
	}
	return emitArray(cmd, p)
}
