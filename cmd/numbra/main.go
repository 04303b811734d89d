// SPDX-License-Identifier: MIT

// Command numbra generates and verifies arbitrary-precision number
// formatting test cases.
//
// Usage:
//
//	numbra -gen [-f input] [-n N] [-o name] [-t json|csv|toml|yaml|c] [options]
//	numbra -ver -f input
//	numbra -gen -ver ...
//
// Run numbra -h for the full flag list. Every numeric default can also be
// set with a NUMBRA_* environment variable (NUMBRA_MAX_PRECISION, …).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/numbra/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
