package main

import (
	"context"
	"os"

	"github.com/fornellas/slogxt/log"
	"github.com/spf13/cobra"
)

var exitFn = os.Exit

// Exit closes the debug log, if any, and exits with code.
func Exit(code int) {
	if logDebugFile != nil {
		logDebugFile.Close()
		logDebugFile = nil
	}
	exitFn(code)
}

// ExitError logs err and exits with a non zero code.
func ExitError(ctx context.Context, err error) {
	logger := log.MustLogger(ctx)
	logger.Error("Failed", "err", err)
	Exit(1)
}

// GetRunFn adapts fn to cobra's Run, exiting through ExitError when fn fails.
func GetRunFn(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			ExitError(cmd.Context(), err)
		}
	}
}
