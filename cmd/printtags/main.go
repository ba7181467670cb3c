// Command printtags prints the tags of audio files, one KEY = value line per
// tag value.
//
// Usage:
//
//	printtags [--verbose] FILE...
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/simonhull/fileref"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(fileref.GetVersionInfo())
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintf(os.Stderr, "printtags: %v\n", err)
		os.Exit(1)
	}
}
