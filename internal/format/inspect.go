package format

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/Station-Manager/logkit/internal/ansi"
	"github.com/davecgh/go-spew/spew"
)

var inspector = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                10,
}

// Inspect renders an arbitrary value, type annotated, for human eyes.
func Inspect(color bool, v any) string {
	out := strings.TrimRight(inspector.Sdump(v), "\n")
	return ansi.Wrap(color, ansi.Italic, out)
}

// InspectStack renders one line per frame, innermost first.
func InspectStack(color bool, frames []runtime.Frame) string {
	var b strings.Builder
	for i, f := range frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("    at ")
		b.WriteString(ansi.Wrap(color, ansi.Green, f.Function))
		b.WriteString(" (")
		b.WriteString(ansi.Wrap(color, ansi.BrightBlack, f.File+":"+strconv.Itoa(f.Line)))
		b.WriteByte(')')
	}
	return b.String()
}
