// Package debug provides a minimal, env-gated trace logger used by the
// canonicalizer and signer to make signature mismatches debuggable. It is
// a trimmed version of restic's internal/debug: no log-file redirection
// and no per-function/per-file filters, just a single on/off switch, since
// this library has no configuration file of its own to read.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var enabled = os.Getenv("S3SIG_DEBUG") != ""

func getPosition() (fn, file string, line int) {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "", "", 0
	}

	f := runtime.FuncForPC(pc)
	name := "unknown"
	if f != nil {
		name = f.Name()
	}

	return name, filepath.Base(file), line
}

// Log writes a trace message to stderr when S3SIG_DEBUG is set in the
// environment. It is a no-op otherwise, so callers pay only a single
// boolean check on the hot path.
func Log(format string, args ...interface{}) {
	if !enabled {
		return
	}

	fn, file, line := getPosition()
	if len(format) == 0 || format[len(format)-1] != '\n' {
		format += "\n"
	}

	fmt.Fprintf(os.Stderr, "%s:%d\t%s\t"+format, append([]interface{}{file, line, fn}, args...)...)
}
