package keyscope

import (
	"fmt"
	"runtime"
	"strings"
)

// stackDepth is how many caller frames a diagnostic carries.
const stackDepth = 4

// callerStack formats a trimmed stack of the engine's callers so a
// warning identifies which call site passed the offending argument.
// skip counts frames above the engine entry point to omit.
func callerStack(skip, depth int) string {
	pc := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "\n\t%s (%s:%d)", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}
