package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abbababa/careers/internal/model"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err, debug)
		os.Exit(1)
	}
}

// reportError prints err for the operator. With dbg set, a classified error
// is followed by the stack where it was raised.
func reportError(w io.Writer, err error, dbg bool) {
	fmt.Fprintln(w, "error:", err)
	if model.IsKind(err, model.KindUsage) {
		fmt.Fprintln(w, "run 'careers help' for usage")
	}
	var me *model.Error
	if dbg && errors.As(err, &me) && len(me.StackTrace()) > 0 {
		w.Write(me.StackTrace())
	}
}
