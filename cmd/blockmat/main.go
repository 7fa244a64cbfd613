// SPDX-License-Identifier: MIT

// Command blockmat runs the demonstration suite and the timing benchmark of
// the block-tiled matrix engine.
//
//	blockmat check [--indent N] [--no-color] [--mul-block B] [--workers W]
//	blockmat bench [--size N] [--repeat R] [--pool] [--snapshot-dir DIR] ...
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("blockmat: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("%v", err)
	}
}
