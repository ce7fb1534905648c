package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/govalues/exact"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// ErrUsage is returned when the command line cannot be parsed.
var ErrUsage = errs.Class("usage")

// run executes the command named by args[0] and prints its results to w.
func run(args []string, w io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return ErrUsage.New("missing command, want one of: allocate, split, partition")
	}
	name, args := args[0], args[1:]
	logger = logger.With(zap.String("command", name))
	switch name {
	case "allocate":
		return runAllocate(args, w, logger)
	case "split":
		return runSplit(args, w, logger)
	case "partition":
		return runPartition(args, w, logger)
	default:
		return ErrUsage.New("unknown command %q", name)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runAllocate(args []string, w io.Writer, logger *zap.Logger) error {
	fs := newFlagSet("allocate")
	target := fs.String("target", "1", "fraction to allocate, as num/den")
	simplify := fs.Bool("simplify", false, "print shares in lowest terms")
	if err := fs.Parse(args); err != nil {
		return ErrUsage.Wrap(err)
	}
	if fs.NArg() == 0 {
		return ErrUsage.New("allocate: missing percentages")
	}

	t, err := exact.ParseFraction(*target)
	if err != nil {
		return oops.Trace(err)
	}
	weights := make([]exact.Percent, 0, fs.NArg())
	for _, arg := range fs.Args() {
		p, err := exact.ParsePercent(arg)
		if err != nil {
			return oops.Trace(err)
		}
		weights = append(weights, p)
	}
	logger.Debug("allocating", zap.Stringer("target", t), zap.Int("weights", len(weights)))

	shares, err := exact.Allocate(weights, t)
	if err != nil {
		return oops.Trace(err)
	}
	for _, s := range shares {
		if *simplify {
			s = s.Simplify()
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return oops.Trace(err)
		}
	}
	logger.Info("allocated", zap.Stringer("target", t), zap.Int("shares", len(shares)))
	return nil
}

func runSplit(args []string, w io.Writer, logger *zap.Logger) error {
	fs := newFlagSet("split")
	prec := fs.Int("precision", 2, "digits after the decimal point")
	if err := fs.Parse(args); err != nil {
		return ErrUsage.Wrap(err)
	}
	if fs.NArg() != 2 {
		return ErrUsage.New("split: want amount and count, got %d arguments", fs.NArg())
	}

	amount, err := exact.ParseFixed(fs.Arg(0), *prec)
	if err != nil {
		return oops.Trace(err)
	}
	count, err := strconv.ParseUint(fs.Arg(1), 10, 64)
	if err != nil {
		return ErrUsage.New("split: invalid count %q", fs.Arg(1))
	}

	// Negative amounts are split by magnitude, every part keeps the sign.
	mag, neg := exact.SignDecompose(amount.Raw())
	parts := exact.NewFixedPartition(mag, count)
	for part := range parts.All() {
		raw, err := exact.SignRecompose(part, neg)
		if err != nil {
			return oops.Trace(err)
		}
		f, err := exact.NewFixed(raw, amount.Precision())
		if err != nil {
			return oops.Trace(err)
		}
		if _, err := fmt.Fprintln(w, f); err != nil {
			return oops.Trace(err)
		}
	}
	logger.Info("split",
		zap.Stringer("amount", amount),
		zap.Uint64("count", count),
		zap.Uint64("remainder", parts.Rem()),
	)
	return nil
}

func runPartition(args []string, w io.Writer, logger *zap.Logger) error {
	fs := newFlagSet("partition")
	if err := fs.Parse(args); err != nil {
		return ErrUsage.Wrap(err)
	}
	if fs.NArg() < 2 {
		return ErrUsage.New("partition: want value and at least one weight")
	}

	value, err := strconv.ParseUint(fs.Arg(0), 10, 64)
	if err != nil {
		return ErrUsage.New("partition: invalid value %q", fs.Arg(0))
	}
	weights := make([]exact.Fraction, 0, fs.NArg()-1)
	for _, arg := range fs.Args()[1:] {
		x, err := exact.ParseFraction(arg)
		if err != nil {
			return oops.Trace(err)
		}
		weights = append(weights, x)
	}

	p, err := exact.NewPartition(value, weights)
	if err != nil {
		return oops.Trace(err)
	}
	for v := range p.All() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return oops.Trace(err)
		}
	}
	logger.Info("partitioned",
		zap.Uint64("value", value),
		zap.Uint64("sum", p.Sum()),
		zap.Uint64("total", p.Total()),
	)
	return nil
}
