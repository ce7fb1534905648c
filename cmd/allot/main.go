// Command allot splits amounts exactly, so that the parts always add up
// to the whole.
//
// Usage:
//
//	allot allocate [-target num/den] [-simplify] pct...
//	allot split [-precision n] amount count
//	allot partition value weight...
//
// The allocate command splits a fraction into shares proportional to the
// given percentages, such as "50%" or "12.5".
// The split command splits a decimal amount into count parts that differ
// by at most one unit of the last digit. A negative amount must follow
// "--" so that it is not read as a flag.
// The partition command splits an integer proportionally to fractional
// weights, such as "1/3".
//
// Results are printed to standard output, one per line.
// Logs are written to standard error and configured by the environment
// variables ALLOT_ENV and ALLOT_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/govalues/exact/internal/logging"
	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := loadConfig(os.Getenv)

	logger, err := logging.New(cfg.logging())
	if err != nil {
		fmt.Fprintf(os.Stderr, "allot: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("allot failed", zap.Error(err))
		if ErrUsage.Has(err) {
			return 2
		}
		return 1
	}
	return 0
}
